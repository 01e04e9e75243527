package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"script tag", `before<script>alert(1)</script>after`, "beforeafter"},
		{"script tag with attrs", `<script type="text/javascript">x()</script>text`, "text"},
		{"uppercase script", `<SCRIPT>x()</SCRIPT>ok`, "ok"},
		{"javascript url", `<a href="javascript:alert(1)">link</a>`, `<a href="alert(1)">link</a>`},
		{"event handler", `<img onerror=alert(1) src="x">`, `<img alert(1) src="x">`},
		{"plain text untouched", "普通留言，没有问题", "普通留言，没有问题"},
		{"trims whitespace", "  hello  ", "hello"},
		{"only script becomes empty", "<script>alert(1)</script>", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clean(tc.input))
		})
	}
}
