package agent

import (
	"io"
	"strings"

	"github.com/fwojciec/kickoff"
)

// fragmentLog is the append-only record of one turn's fragments. The
// visible buffer is a pure fold over the log, which makes the aggregation
// contract trivially checkable: replaying the same fragment sequence
// always produces the same buffer, and every intermediate buffer is a
// prefix of the final one.
type fragmentLog struct {
	fragments []string
	size      int
}

func (l *fragmentLog) append(delta string) {
	l.fragments = append(l.fragments, delta)
	l.size += len(delta)
}

func (l *fragmentLog) text() string {
	var sb strings.Builder
	sb.Grow(l.size)
	for _, f := range l.fragments {
		sb.WriteString(f)
	}
	return sb.String()
}

// drain consumes the stream until completion, folding each fragment into
// the log and invoking apply with the updated full buffer after every
// fragment. It returns the final text. On mid-stream failure the partial
// text is returned alongside the error; the caller decides whether the
// partial survives.
func drain(stream kickoff.Stream, apply func(delta, full string)) (string, error) {
	var log fragmentLog
	for {
		evt, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return log.text(), err
		}
		frag, ok := evt.(kickoff.EventFragment)
		if !ok {
			continue
		}
		log.append(frag.Delta)
		if apply != nil {
			apply(frag.Delta, log.text())
		}
	}
	text, err := stream.Text()
	if err != nil {
		return log.text(), err
	}
	return text, nil
}
