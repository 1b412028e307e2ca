package pricing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NextNumber generates the next quotation number for the month of now, in the
// form QT<yyyy><mm><seq> with a zero-padded 3-digit sequence. The sequence is
// one past the highest trailing number among existing entries sharing the
// prefix; entries whose suffix does not parse are ignored. A new month resets
// the sequence to 001.
//
// The result is advisory only: two concurrent callers reading the same
// snapshot will produce the same number. The persistence layer serializes
// assignment with a unique constraint, and callers retry on conflict.
func NextNumber(existing []string, now time.Time) string {
	prefix := fmt.Sprintf("QT%04d%02d", now.Year(), int(now.Month()))

	maxSeq := 0
	for _, number := range existing {
		if !strings.HasPrefix(number, prefix) {
			continue
		}
		seq, err := strconv.Atoi(number[len(prefix):])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s%03d", prefix, maxSeq+1)
}
