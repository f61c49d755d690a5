package main

import (
	"time"
)

type ioData struct {
	bytes int
	calls int
}

func (i *ioData) add(bytes int) {
	i.bytes += bytes
	if bytes > 0 {
		i.calls++
	}
}

// record counts a call even when it moved no bytes.
func (i *ioData) record(bytes int) {
	i.bytes += bytes
	i.calls++
}

func (i *ioData) merge(in *ioData) {
	i.bytes += in.bytes
	i.calls += in.calls
}

func (i *ioData) getCalls() int {
	return i.calls
}

func (i *ioData) getByteCount() int {
	return i.bytes
}

func newIoData() *ioData {
	return &ioData{}
}

type scanStats struct {
	Tokens    int
	Ints      int
	Lines     int
	Filtered  int
	Skipped   int
	Reads     int
	BytesIn   int
	Writes    int
	BytesOut  int
	Growths   int
	Capacity  int
	Elapsed   time.Duration
	TokensSec int
}

type scanStatistics struct {
	stats scanStats
	out   ioData
	start time.Time
}

func newScanStatistics() *scanStatistics {
	return &scanStatistics{start: time.Now()}
}

func (s *scanStatistics) token() {
	s.stats.Tokens++
}

func (s *scanStatistics) integer() {
	s.stats.Ints++
}

func (s *scanStatistics) line() {
	s.stats.Lines++
}

func (s *scanStatistics) filtered() {
	s.stats.Filtered++
}

func (s *scanStatistics) skipped() {
	s.stats.Skipped++
}

func (s *scanStatistics) written(data *ioData) {
	s.out.merge(data)
}

// analyze snapshots the counters together with what the source and the
// scanner measured on their own.
func (s *scanStatistics) analyze(src *source, scanner *scanner) scanStats {
	now := time.Now()
	stats := s.stats
	stats.Reads = src.numOfReads()
	stats.BytesIn = src.bytesIn()
	stats.Writes = s.out.getCalls()
	stats.BytesOut = s.out.getByteCount()
	stats.Growths = scanner.bufferGrowths()
	stats.Capacity = scanner.bufferCapacity()
	stats.Elapsed = now.Sub(s.start)
	elapsed := max(1, s.secondsElapsed(now)) // at least 1sec or will divide by zero
	stats.TokensSec = stats.Tokens / elapsed
	return stats
}

func (s *scanStatistics) secondsElapsed(now time.Time) int {
	elapsed := now.Sub(s.start)
	secs := elapsed.Seconds()
	return int(secs)
}
