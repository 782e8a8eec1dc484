package marketdata

// UpstreamError is returned for any failure talking to an upstream service:
// transport errors, timeouts, non-2xx statuses and undecodable bodies.
type UpstreamError struct {
	Upstream string
	URL      string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return "unknown upstream failure"
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
