package main

import (
	"math"
	"strings"

	log "github.com/sirupsen/logrus"
)

type commandCode string
type commandRunner func(job *scanJob) error

const (
	commandTokens commandCode = "TOKENS"
	commandInts   commandCode = "INTS"
	commandSum    commandCode = "SUM"
	commandCount  commandCode = "COUNT"
	commandLines  commandCode = "LINES"
	commandFreq   commandCode = "FREQ"
)

var commandCodes = []commandCode{
	commandTokens,
	commandInts,
	commandSum,
	commandCount,
	commandLines,
	commandFreq,
}

var commandRunners = map[commandCode]commandRunner{
	commandTokens: runTokens,
	commandInts:   runInts,
	commandSum:    runSum,
	commandCount:  runCount,
	commandLines:  runLines,
	commandFreq:   runFreq,
}

func parseCommandCode(mode string) (commandCode, error) {
	for _, code := range commandCodes {
		if strings.ToUpper(mode) == string(code) {
			return code, nil
		}
	}
	return "", newConfigError("invalid mode \"%v\"", mode)
}

func runTokens(job *scanJob) error {
	for i := 0; job.scanner.hasNext(); i++ {
		tok, err := job.scanner.next()
		if isEOF(err) {
			break
		}
		if err != nil {
			return err
		}
		job.stats.token()
		keep, err := job.filter.keep(filterEnv{Tok: tok, I: i})
		if err != nil {
			return err
		}
		if !keep {
			job.stats.filtered()
			continue
		}
		job.sink.writeLine(tok)
		if err := job.flushIfFull(); err != nil {
			return err
		}
	}
	return nil
}

func runInts(job *scanJob) error {
	return job.eachInt(func(n int64) error {
		job.sink.writeInt(n)
		return job.flushIfFull()
	})
}

func runSum(job *scanJob) error {
	var sum int64
	err := job.eachInt(func(n int64) error {
		if (n > 0 && sum > math.MaxInt64-n) || (n < 0 && sum < math.MinInt64-n) {
			return newSumOverflowError(job.stats.stats.Ints)
		}
		sum += n
		return nil
	})
	if err != nil {
		return err
	}
	job.sink.writeInt(sum)
	return nil
}

func runCount(job *scanJob) error {
	count := 0
	for i := 0; job.scanner.hasNext(); i++ {
		tok, err := job.scanner.next()
		if isEOF(err) {
			break
		}
		if err != nil {
			return err
		}
		job.stats.token()
		keep, err := job.filter.keep(filterEnv{Tok: tok, I: i})
		if err != nil {
			return err
		}
		if !keep {
			job.stats.filtered()
			continue
		}
		count++
	}
	job.sink.writeInt(int64(count))
	return nil
}

func runLines(job *scanJob) error {
	for i := 0; ; i++ {
		line, err := job.scanner.nextLine()
		if isEOF(err) {
			return nil
		}
		if err != nil {
			return err
		}
		job.stats.line()
		keep, err := job.filter.keep(filterEnv{Tok: line, I: i})
		if err != nil {
			return err
		}
		if !keep {
			job.stats.filtered()
			continue
		}
		job.sink.writeLine(line)
		if err := job.flushIfFull(); err != nil {
			return err
		}
	}
}

func runFreq(job *scanJob) error {
	tally := newTally()
	for i := 0; job.scanner.hasNext(); i++ {
		tok, err := job.scanner.next()
		if isEOF(err) {
			break
		}
		if err != nil {
			return err
		}
		job.stats.token()
		keep, err := job.filter.keep(filterEnv{Tok: tok, I: i})
		if err != nil {
			return err
		}
		if !keep {
			job.stats.filtered()
			continue
		}
		tally.add(tok)
	}

	log.WithFields(log.Fields{
		"distinct": tally.count(),
		"total":    tally.getTotal(),
	}).Debug("Tokens tallied")

	for _, item := range tally.getItens() {
		job.sink.writeCount(item.getCount(), item.getKey())
		if err := job.flushIfFull(); err != nil {
			return err
		}
	}
	return nil
}
