package device

import (
	"errors"
	"fmt"
	"io"
)

// ReportReader reads one encoded input report from r.
type ReportReader func(r io.Reader) ([]byte, error)

// FixedReports returns a ReportReader for reports of a constant size.
func FixedReports(size int) ReportReader {
	return func(r io.Reader) ([]byte, error) {
		buf := make([]byte, size)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return buf, nil
	}
}

// ReportStream feeds reports from a reader into a device, one per call.
type ReportStream struct {
	r    io.Reader
	read ReportReader
	dec  WireDecoder
}

// NewReportStream returns a stream applying reports read by read to dec.
func NewReportStream(r io.Reader, read ReportReader, dec WireDecoder) *ReportStream {
	return &ReportStream{r: r, read: read, dec: dec}
}

// Next applies the next report. It returns false without error once the
// reader is exhausted.
func (s *ReportStream) Next() (bool, error) {
	data, err := s.read(s.r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("read report: %w", err)
	}
	if err := s.dec.ApplyWire(data); err != nil {
		return false, fmt.Errorf("apply report: %w", err)
	}
	return true, nil
}
