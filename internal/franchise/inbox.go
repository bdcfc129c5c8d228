package franchise

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	noticeEntropy   = rand.New(rand.NewSource(time.Now().UnixNano()))
	noticeEntropyMu sync.Mutex
)

// newNoticeID returns a sortable unique id for an inbox entry. Notices are
// simulation-time events, not generated content, so a wall-clock ULID is
// fine here.
func newNoticeID() string {
	noticeEntropyMu.Lock()
	defer noticeEntropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), noticeEntropy).String()
}

// notify prepends a message to the inbox (newest first).
func (s *Session) notify(format string, args ...any) {
	n := Notice{
		ID:   newNoticeID(),
		Year: s.Year,
		Week: s.Week,
		Msg:  fmt.Sprintf(format, args...),
		At:   time.Now(),
	}
	s.Inbox = append([]Notice{n}, s.Inbox...)
}
