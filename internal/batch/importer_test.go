package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpslkit/internal/diagnostic"
	"rpslkit/internal/schema"
)

var upper = schema.CleanerFunc(func(value string, _ *diagnostic.Messages) (string, bool) {
	return strings.ToUpper(value), true
})

var warnOnOld = schema.CleanerFunc(func(value string, msgs *diagnostic.Messages) (string, bool) {
	if value == "old" {
		msgs.Warning("deprecated value")
	}

	return value, true
})

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()

	reg, err := schema.NewRegistry(
		schema.MustCompile([]schema.FieldSpec{
			{Name: "person"},
			{Name: "nic-hdl", PrimaryKey: true, Cleaner: upper},
			{Name: "remarks", Optional: true, Multiple: true, Cleaner: warnOnOld},
		}),
		schema.MustCompile([]schema.FieldSpec{
			{Name: "mntner", PrimaryKey: true, Cleaner: upper},
			{Name: "auth", Multiple: true},
		}),
	)
	require.NoError(t, err)

	return reg
}

const stream = `person: Test Person
nic-hdl: dumy-ripe

mntner: foo-mnt

limerick: There once was a parser

person: Old Person
nic-hdl: old-ripe
remarks: old
`

func TestImporter_ReadAll(t *testing.T) {
	var logs bytes.Buffer

	im := New(testRegistry(t), WithWorkers(2), WithLogger(zerolog.New(zerolog.SyncWriter(&logs))))

	results, summary, err := im.ReadAll(context.Background(), strings.NewReader(stream))
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, Summary{Objects: 4, Valid: 2, Invalid: 2, WithWarnings: 1, UnknownClass: 1}, summary)

	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}

	assert.True(t, results[0].Valid(), spew.Sdump(results[0]))
	assert.Equal(t, "DUMY-RIPE", results[0].Object.PK())

	assert.False(t, results[1].Valid())
	assert.Equal(t, []string{"Mandatory attribute auth on object mntner is missing"},
		results[1].Object.Messages().ErrorStrings())

	assert.Nil(t, results[2].Object)
	assert.Equal(t, 6, results[2].StartLine)
	assert.True(t, errors.Is(results[2].Err, schema.ErrUnknownClass))

	unknown := results[2].Messages()
	require.Len(t, unknown.Errors, 1)
	assert.Equal(t, diagnostic.KindUnknownClass, unknown.Errors[0].Kind)
	assert.Equal(t, `unknown object class: "limerick"`, unknown.Errors[0].Message)

	assert.True(t, results[3].Valid())
	assert.Equal(t, []string{"deprecated value"}, results[3].Object.Messages().WarningStrings())
	deprecated := results[3].Messages()
	assert.Equal(t, []string{"deprecated value"}, deprecated.WarningStrings())

	assert.Contains(t, logs.String(), `"message":"unknown object class"`)
	assert.Contains(t, logs.String(), `"message":"batch parsed"`)
}

func TestImporter_Relaxed(t *testing.T) {
	im := New(testRegistry(t), WithStrict(false))

	results, summary, err := im.ReadAll(context.Background(), strings.NewReader("mntner: foo-mnt\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, "FOO-MNT", results[0].Object.PK())
	assert.False(t, results[0].Object.Strict())
}

func TestImporter_ResultsKeepInputOrder(t *testing.T) {
	var records []Record
	for i := 0; i < 200; i++ {
		records = append(records, Record{
			Index: i,
			Text:  fmt.Sprintf("person: P%d\nnic-hdl: p%d-test\n", i, i),
		})
	}

	results, summary, err := New(testRegistry(t), WithWorkers(8)).Run(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 200, summary.Valid)

	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("P%d-TEST", i), r.Object.PK())
	}
}

func TestImporter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New(testRegistry(t)).Run(ctx, []Record{{Text: "mntner: foo-mnt\n"}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestImporter_NoRecords(t *testing.T) {
	results, summary, err := New(testRegistry(t)).Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, results)
	assert.Equal(t, Summary{}, summary)
}
