package ports

import "context"

// ResponseCache stores rendered response payloads for the public read
// endpoints. Misses and backend failures both surface as a plain miss.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte) error
}
