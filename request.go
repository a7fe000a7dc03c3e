package client

// Request describes a single API call. Method and Path are required; Payload
// and Expected are optional.
//
// For GET, HEAD and OPTIONS requests the payload is encoded as query
// parameters (boolean values are lower-cased); for all other methods it is
// sent as a JSON body.
//
// Expected lists status codes outside the 2xx range that the caller treats as
// success. A response with an expected status is returned normally instead of
// being raised as an error.
type Request struct {
	Method   string
	Path     string
	Payload  map[string]any
	Expected []int
}
