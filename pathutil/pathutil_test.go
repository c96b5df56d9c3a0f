package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_BackslashSeparators(t *testing.T) {
	assert.Equal(t, "src/drivers/uart.c", Normalize(`src\drivers\uart.c`))
}

func TestNormalize_DrivePrefix(t *testing.T) {
	assert.Equal(t, "C:/GIT/mcu-sdk/middleware/lwip", Normalize(`C:\GIT\mcu-sdk\middleware\lwip`))
}

func TestNormalize_PreservesCaseAndUpLevels(t *testing.T) {
	assert.Equal(t, "../Inc/FOO.h", Normalize(`..\Inc\FOO.h`))
}

func TestNormalize_TrailingSeparator(t *testing.T) {
	assert.Equal(t, "src/drivers", Normalize("src/drivers/"))
	assert.Equal(t, "/", Normalize("/"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{`C:\GIT\sdk`, "src/inc/", "../a/b.h", "plain.h", "/"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestSplitJoin_RoundTrip(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c.h"}, Split("a/b/c.h"))
	assert.Nil(t, Split("."))
	assert.Equal(t, ".", Join())
	assert.Equal(t, "a/b", Join("a", "b"))
}

func TestDirBase(t *testing.T) {
	assert.Equal(t, "a/b", Dir("a/b/c.h"))
	assert.Equal(t, ".", Dir("c.h"))
	assert.Equal(t, "c.h", Base("a/b/c.h"))
	assert.Equal(t, "c.h", Base("c.h"))
}

func TestAscend(t *testing.T) {
	got, ok := Ascend("a/b/c", 2)
	assert.True(t, ok)
	assert.Equal(t, "a", got)

	got, ok = Ascend("a/b", 2)
	assert.True(t, ok)
	assert.Equal(t, ".", got)

	_, ok = Ascend("a", 2)
	assert.False(t, ok)
}

func TestDescend(t *testing.T) {
	assert.Equal(t, "a/b/x", Descend("a/b", "x"))
	assert.Equal(t, "x/y", Descend(".", "x", "y"))
	assert.Equal(t, "a", Descend("a"))
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "src/", CommonPrefix([]string{"src/a", "src/b", "src/"}))
	assert.Equal(t, "", CommonPrefix([]string{"src/a", "inc/b"}))
	assert.Equal(t, "", CommonPrefix(nil))
}
