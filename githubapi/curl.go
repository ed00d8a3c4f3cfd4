package githubapi

import (
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

const redactedToken = "Bearer <redacted>"

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand renders a request as a curl command line that reproduces it.
// The bearer token is never included.
func curlCommand(r *http.Request, body []byte, authenticated bool) string {
	var b commandBuilder
	b.add("curl", "-X", r.Method)

	names := make([]string, 0, len(r.Header))
	for name := range r.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.EqualFold(name, "Authorization") {
			continue
		}
		for _, value := range r.Header[name] {
			b.add("-H", name+": "+value)
		}
	}
	if authenticated {
		b.add("-H", "Authorization: "+redactedToken)
	}
	if len(body) > 0 {
		b.add("-d", string(body))
	}
	b.add(r.URL.String())
	return b.String()
}
