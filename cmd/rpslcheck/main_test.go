package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const validRoute = `route: 193.254.030.00/24
descr: Example route
origin: AS12726
mnt-by: AS760-MNT
source: RIPE
`

const incompleteRoute = `route: 192.0.2.0/24
origin: AS65000
mnt-by: AS760-MNT
`

// runCLI executes the root command with a fresh set of global flags.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgFile = ""
	schemaFile = ""
	relaxed = false
	outputFormat = formatText
	dump = false

	var out bytes.Buffer

	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestValidate_Valid(t *testing.T) {
	out, err := runCLI(t, validRoute, "validate")
	require.NoError(t, err)

	assert.Equal(t, "✓ <stdin>:1 route 193.254.30.0/24,AS12726\n", out)
}

func TestValidate_Rejected(t *testing.T) {
	out, err := runCLI(t, validRoute+"\n"+incompleteRoute, "validate")
	require.ErrorIs(t, err, errRejected)
	assert.Equal(t, "objects rejected: 1 of 2", err.Error())

	assert.Contains(t, out, "✗ <stdin>:7 route 192.0.2.0/24,AS65000\n")
	assert.Contains(t, out, "    error: source: Mandatory attribute source on object route is missing\n")
}

func TestValidate_Relaxed(t *testing.T) {
	_, err := runCLI(t, incompleteRoute, "validate", "--relaxed")
	require.NoError(t, err)
}

func TestValidate_UnknownClass(t *testing.T) {
	out, err := runCLI(t, "limerick: There once was a parser\n", "validate")
	require.ErrorIs(t, err, errRejected)

	assert.Contains(t, out, `error: unknown object class: "limerick"`)
}

func TestValidate_Files(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routes.db")
	require.NoError(t, os.WriteFile(path, []byte("% header\n\n"+validRoute), 0o600))

	out, err := runCLI(t, "", "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "✓ "+path+":3 route 193.254.30.0/24,AS12726\n", out)

	_, err = runCLI(t, "", "validate", filepath.Join(dir, "missing.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open ")
}

func TestValidate_YAML(t *testing.T) {
	out, err := runCLI(t, validRoute+"\n"+incompleteRoute, "validate", "--format", "yaml")
	require.ErrorIs(t, err, errRejected)

	var reports []objectReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)

	assert.Equal(t, objectReport{
		Source: "<stdin>",
		Line:   1,
		Class:  "route",
		PK:     "193.254.30.0/24,AS12726",
		Valid:  true,
	}, reports[0])
	assert.False(t, reports[1].Valid)
	assert.Len(t, reports[1].Errors, 1)
}

func TestValidate_Dump(t *testing.T) {
	out, err := runCLI(t, validRoute, "validate", "--dump")
	require.NoError(t, err)

	assert.Contains(t, out, "# <stdin>:1\n")
	assert.Contains(t, out, "FoldMarkers")
	assert.Contains(t, out, `"193.254.30.0/24"`)
}

func TestRender(t *testing.T) {
	out, err := runCLI(t, validRoute+"\nlimerick: skipped\n\n"+validRoute, "render")
	require.NoError(t, err)

	canonical := "route:          193.254.30.0/24\n" +
		"descr:          Example route\n" +
		"origin:         AS12726\n" +
		"mnt-by:         AS760-MNT\n" +
		"source:         RIPE\n"
	assert.Equal(t, canonical+"\n"+canonical, out)
}

func TestPK(t *testing.T) {
	out, err := runCLI(t, validRoute+"\n"+"person: Test Person\nnic-hdl: dumy-ripe\n", "pk", "--relaxed")
	require.NoError(t, err)

	assert.Equal(t, "route\t193.254.30.0/24,AS12726\nperson\tDUMY-RIPE\n", out)
}

func TestClasses(t *testing.T) {
	out, err := runCLI(t, "", "classes")
	require.NoError(t, err)

	assert.Contains(t, out, "route            pk=route,origin required=route,origin,mnt-by,source\n")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 17)
}

func TestClasses_ExtraSchemaAsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "irt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classes:\n  - fields:\n      - name: irt\n        flags: primary_key\n"), 0o600))

	out, err := runCLI(t, "", "classes", "--schema", path, "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "class: route\n")
	assert.Contains(t, out, "class: irt\n")
}

func TestUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "", "classes", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, `unknown output format "xml"`, err.Error())
}

func TestValidate_SuggestsAttribute(t *testing.T) {
	out, err := runCLI(t, strings.Replace(validRoute, "descr:", "desc:", 1), "validate")
	require.ErrorIs(t, err, errRejected)

	assert.Contains(t, out, "    error: desc: Unrecognised attribute desc on object route\n")
	assert.Contains(t, out, "    info: desc: Did you mean descr?\n")
}
