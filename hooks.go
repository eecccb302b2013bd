package cookiewire

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The codec calls them on hot paths.
type Hooks interface {
	// A cookie was dropped during Parse.
	// reason ∈ {"bad_escape", "decrypt_failed", "bad_signature", "bad_body"}
	CookieDropped(name, reason string)

	// Create rejected an encoded cookie larger than MaxValueLen.
	// encodedLen is the size of name=value after percent-encoding.
	ValueTooLong(name string, encodedLen int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) CookieDropped(string, string) {}
func (NopHooks) ValueTooLong(string, int)     {}
