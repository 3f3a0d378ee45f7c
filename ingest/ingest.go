package ingest

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Mode selects which dictionary a query targets.
const (
	ModeWords = "words"
	ModeNames = "names"
)

// Query represents one lookup query and its metadata.
type Query struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

// QueryChan is a channel where accepted queries are published for the
// lookup worker to consume.
var QueryChan chan Query

func init() {
	// buffered channel to decouple producer and consumers
	QueryChan = make(chan Query, 100)
}

// generateID creates a short random hex id. Falls back to a timestamp string on error.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// IngestQuery trims and validates the input, constructs a Query and
// publishes it to QueryChan. It returns the created Query or an error if
// the input was empty.
func IngestQuery(text, mode string) (Query, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Query{}, errors.New("empty query")
	}

	q := Query{
		ID:        generateID(),
		Text:      trimmed,
		Mode:      mode,
		CreatedAt: time.Now().UTC(),
	}

	// publish asynchronously so callers are not blocked
	go func(query Query) {
		select {
		case QueryChan <- query:
		default:
			// channel is full; drop silently for now
		}
	}(q)

	return q, nil
}
