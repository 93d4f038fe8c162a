package request

import (
	"fmt"
	"math/rand"
	"time"
)

// generateRequestID builds an identifier like REQ1756634890123456.
// The random tail keeps ids distinct within one millisecond.
func generateRequestID() string {
	return fmt.Sprintf("REQ%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
