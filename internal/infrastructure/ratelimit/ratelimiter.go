package ratelimit

// Limiter throttles repeated requests per client key. Used on the auth
// endpoints to slow down credential stuffing.
type Limiter interface {
	Allow(key string, limit int) (bool, error)
	Reset(key string) error
}
