package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/uniongen"
	"github.com/sublee/uniongen/internal/pkgtest"
	"github.com/sublee/uniongen/internal/uniongen/parse"
)

func load(t *testing.T, files map[string]string) *parse.Parser {
	t.Helper()
	pkg := pkgtest.Load(t, "example.com/fixture", files)
	p, err := parse.New(pkg)
	require.NoError(t, err)
	return p
}

func loadFile(t *testing.T, src string) *parse.Parser {
	t.Helper()
	return load(t, map[string]string{"fixture.go": src})
}

func requireSchemaError(t *testing.T, err error, kind parse.ErrorKind) {
	t.Helper()
	var serr *parse.SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, kind, serr.Kind, "got %s: %s", serr.Kind, serr)
}

func TestParseUnion(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
	Text(string)
	Flag(bool)
}

var _ = uniongen.Union[Value]()
`)

	schemas, err := p.ParseUnions()
	require.NoError(t, err)
	require.Len(t, schemas, 1)

	schema := schemas[0]
	assert.Equal(t, "Value", schema.Name)
	assert.Equal(t, uniongen.All, schema.Caps)

	require.Len(t, schema.Cases, 3)
	assert.Equal(t, "Number", schema.Cases[0].Name)
	assert.Equal(t, "int64", schema.Cases[0].Payload.String())
	assert.Equal(t, "Text", schema.Cases[1].Name)
	assert.Equal(t, "string", schema.Cases[1].Payload.String())
	assert.Equal(t, "Flag", schema.Cases[2].Name)
	assert.Equal(t, "bool", schema.Cases[2].Payload.String())
}

func TestParseCaps(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
}

var _ = uniongen.Union[Value](uniongen.From | uniongen.TryInto)
`)

	schemas, err := p.ParseUnions()
	require.NoError(t, err)
	require.Len(t, schemas, 1)

	assert.Equal(t, uniongen.From|uniongen.TryInto, schemas[0].Caps)
}

func TestParseCapsVariadic(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
}

var _ = uniongen.Union[Value](uniongen.TryAsRef, uniongen.TryAsMut)
`)

	schemas, err := p.ParseUnions()
	require.NoError(t, err)
	require.Len(t, schemas, 1)

	assert.Equal(t, uniongen.TryAsRef|uniongen.TryAsMut, schemas[0].Caps)
}

func TestParseCompositePayloads(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Blob interface {
	Bytes([]byte)
	Table(map[string]int64)
	Ptr(*int64)
}

var _ = uniongen.Union[Blob]()
`)

	schemas, err := p.ParseUnions()
	require.NoError(t, err)
	require.Len(t, schemas, 1)

	require.Len(t, schemas[0].Cases, 3)
	assert.Equal(t, "[]byte", schemas[0].Cases[0].Payload.String())
	assert.Equal(t, "map[string]int64", schemas[0].Cases[1].Payload.String())
	assert.Equal(t, "*int64", schemas[0].Cases[2].Payload.String())
}

func TestParseNotNamed(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

var _ = uniongen.Union[int64]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrNotAVariantType)
}

func TestParseNotInterface(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value struct{}

var _ = uniongen.Union[Value]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrNotAVariantType)
}

func TestParseForeignType(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

var _ = uniongen.Union[error]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrNotAVariantType)
}

func TestParseNoCases(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface{}

var _ = uniongen.Union[Value]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrNotAVariantType)
}

func TestParseGeneric(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Box[T any] interface {
	Item(T)
}

var _ = uniongen.Union[Box[int64]]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrUnsupportedGenerics)
}

func TestParseEmbedded(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type base interface {
	Number(int64)
}

type Value interface {
	base
	Text(string)
}

var _ = uniongen.Union[Value]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrEmbeddedUnsupported)
}

func TestParseMissingPayload(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Number()
}

var _ = uniongen.Union[Value]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrMissingPayload)
}

func TestParseNamedPayload(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Number(n int64)
}

var _ = uniongen.Union[Value]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrNamedFieldsUnsupported)
}

func TestParseTooManyPayloads(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Pair(int64, string)
}

var _ = uniongen.Union[Value]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrTooManyFields)
}

func TestParseVariadicPayload(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Numbers(...int64)
}

var _ = uniongen.Union[Value]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrTooManyFields)
}

func TestParseUnexpectedResults(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64) error
}

var _ = uniongen.Union[Value]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrUnexpectedResults)
}

func TestParseDuplicatePayloadType(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Width(int64)
	Height(int64)
}

var _ = uniongen.Union[Value]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrDuplicatePayloadType)
}

func TestParseDuplicateAliasedPayloadType(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Meters = int64

type Value interface {
	Raw(int64)
	Distance(Meters)
}

var _ = uniongen.Union[Value]()
`)

	_, err := p.ParseUnions()
	requireSchemaError(t, err, parse.ErrDuplicatePayloadType)
}

func TestParseRedeclared(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
}

var _ = uniongen.Union[Value]()
var _ = uniongen.Union[Value](uniongen.From)
`)

	_, err := p.ParseUnions()
	require.ErrorContains(t, err, "redeclared")
}

func TestParseUntaggedDeclaration(t *testing.T) {
	p := load(t, map[string]string{
		"union.go": `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

var _ = uniongen.Union[Value]()
`,
		"value.go": `
package fixture

type Value interface {
	Number(int64)
}
`,
	})

	_, err := p.ParseUnions()
	require.ErrorContains(t, err, "//go:build uniongen")
}

func TestValidateConstraint(t *testing.T) {
	p := loadFile(t, `
package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
}

var _ = uniongen.Union[Value]()
`)

	err := p.Validate()
	require.ErrorContains(t, err, `"//go:build uniongen" constraint`)
}

func TestValidateInlineDirective(t *testing.T) {
	p := loadFile(t, `
//go:build uniongen

package fixture

import "github.com/sublee/uniongen"

type Value interface {
	Number(int64)
}

func init() {
	_ = uniongen.Union[Value]()
}
`)

	err := p.Validate()
	require.ErrorContains(t, err, "package-level blank assignment")
}
