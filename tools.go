//go:build tools

package hugefloat

import _ "golang.org/x/tools/cmd/stringer"
