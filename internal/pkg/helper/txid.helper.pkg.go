package helper

import (
	"fmt"
	"math/rand"
	"time"
)

// TransactionID returns a correlation identifier for one checkout attempt,
// formatted TXN-<unix millis>-<random 0..9999>. Uniqueness is probabilistic;
// the id is a log/provider correlation aid, never a primary key.
func TransactionID() string {
	return fmt.Sprintf("TXN-%d-%d", time.Now().UnixMilli(), rand.Intn(10000))
}
