package multipart_test

import (
	"fmt"

	"github.com/tomasbasham/multipart"
)

// boundaryToken matches the tokens produced by browser form submissions.
const boundaryToken = "----WebKitFormBoundaryS3sDR2atmc8KJS5U"

type Credentials struct {
	Username string                 `form:"username"`
	Password string                 `form:"password"`
	Upload   *multipart.FileHeader  `form:"file"`
	Uploads  []multipart.FileHeader `form:"file"`
}

type Profile struct {
	Name     string   `form:"name"`
	Age      int      `form:"age"`
	Admin    bool     `form:"admin"`
	Score    float64  `form:"score"`
	Tags     []string `form:"tags"`
	Role     Role     `form:"role"`
	Private  string   `form:"-"`
	Untagged string
}

type Role int

const (
	Viewer Role = iota
	Editor
	Owner
)

func (r *Role) UnmarshalForm(value string) error {
	switch value {
	case "viewer":
		*r = Viewer
	case "editor":
		*r = Editor
	case "owner":
		*r = Owner
	default:
		return fmt.Errorf("unknown role %q", value)
	}
	return nil
}

// loginBody builds the canonical test form: two fields and one file part
// holding payload. It returns the body and the boundary as it appears in
// the body.
func loginBody(payload []byte) ([]byte, string) {
	b := multipart.NewBuilder(boundaryToken)
	b.WriteField("username", "nabiizy")
	b.WriteField("password", "password")
	b.WriteFile("file", "screenshot.png", "image/png", payload)
	return b.Bytes(), b.Boundary()
}
