package matrix

const (
	DefaultHTTPPort  = 80
	DefaultHTTPSPort = 443

	// APIPath is prepended to every remote method name.
	APIPath = "/api/"

	ParamAPIKey     = "api_key"
	ParamAPIVersion = "api_version"
	ParamDebug      = "debug"

	// DebugValue is what the service receives for debug=true.
	DebugValue = "1"
)
