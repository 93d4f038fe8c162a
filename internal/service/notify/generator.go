package notify

import (
	"fmt"
	"math/rand"
	"time"
)

// newID builds a feed-unique identifier like NOTIF1756634890123456.
// The random tail keeps ids distinct within one millisecond.
func newID(prefix string) string {
	return fmt.Sprintf("%s%d%03d", prefix, time.Now().UnixMilli(), rand.Intn(1000))
}
