package main

import (
	log "github.com/sirupsen/logrus"
)

// scanJob runs one mode over one input. The input and output streams are
// owned by the caller, which closes them after run returns.
type scanJob struct {
	settings ScanSettings
	code     commandCode
	src      *source
	scanner  *scanner
	sink     *sink
	filter   *itemFilter
	stats    *scanStatistics
}

func newScanJob(settings ScanSettings, in inputStream, out outputStream) (*scanJob, error) {
	code, err := parseCommandCode(settings.Mode)
	if err != nil {
		return nil, err
	}
	filter, err := newItemFilter(settings.Filter)
	if err != nil {
		return nil, err
	}
	job := new(scanJob)
	job.settings = settings
	job.code = code
	job.src = newBufferedSource(in, settings.ReadBuffer)
	job.scanner = newScanner(job.src, settings.Capacity)
	job.sink = newSink(out, settings.FlushThreshold)
	job.filter = filter
	job.stats = newScanStatistics()
	return job, nil
}

func (job *scanJob) run() error {
	log.WithFields(job.settings.fields()).Debug("Scan started")

	runner := commandRunners[job.code]
	err := runner(job)

	// Whatever was produced before a failure still reaches the output
	if flushErr := job.flush(); flushErr != nil && err == nil {
		err = flushErr
	}

	info("Scan finished", log.Fields{
		"mode":    job.code,
		"tokens":  job.scanner.numOfTokens(),
		"lines":   job.scanner.numOfLines(),
		"state":   job.scanner.getState(),
		"success": err == nil,
	})

	return err
}

// eachInt hands every integer token to fn, honoring the filter and the
// skipMalformed setting.
func (job *scanJob) eachInt(fn func(n int64) error) error {
	for i := 0; job.scanner.hasNext(); i++ {
		n, err := job.nextInteger()
		if isEOF(err) {
			return nil
		}
		if isMalformedNumber(err) && job.settings.SkipMalformed {
			job.stats.token()
			job.stats.skipped()
			scanErr, _ := asScanError(err)
			warn("Skipping malformed number", log.Fields{"token": scanErr.getToken(), "index": i})
			continue
		}
		if err != nil {
			return err
		}
		job.stats.token()
		job.stats.integer()

		env := filterEnv{N: n, I: i}
		if job.filter != nil {
			env.Tok = job.scanner.buf.text()
		}
		keep, err := job.filter.keep(env)
		if err != nil {
			return err
		}
		if !keep {
			job.stats.filtered()
			continue
		}
		if err := fn(n); err != nil {
			return err
		}
	}
	return nil
}

func (job *scanJob) nextInteger() (int64, error) {
	if job.settings.Wide {
		return job.scanner.nextInt64()
	}
	n, err := job.scanner.nextInt()
	return int64(n), err
}

func (job *scanJob) flushIfFull() error {
	data, err := job.sink.flushIfFull()
	job.stats.written(data)
	return err
}

func (job *scanJob) flush() error {
	data, err := job.sink.flush()
	job.stats.written(data)
	return err
}

func (job *scanJob) summary() scanStats {
	return job.stats.analyze(job.src, job.scanner)
}
