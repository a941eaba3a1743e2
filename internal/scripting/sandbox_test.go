package scripting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"

	"github.com/wildcatcafe/catastrophe/internal/scripting"
)

func TestNewSandboxedState_SafeLibsOnly(t *testing.T) {
	L := scripting.NewSandboxedState(0)
	defer L.Close()

	// math is available; io/os were never opened.
	require.NoError(t, L.DoString(`x = math.max(1, 2)`))
	assert.Equal(t, lua.LNumber(2), L.GetGlobal("x"))
	assert.Equal(t, lua.LNil, L.GetGlobal("io"))
	assert.Equal(t, lua.LNil, L.GetGlobal("os"))
}

func TestNewSandboxedState_DangerousGlobalsStripped(t *testing.T) {
	L := scripting.NewSandboxedState(0)
	defer L.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "collectgarbage", "require"} {
		assert.Equal(t, lua.LNil, L.GetGlobal(name), "global %s must be stripped", name)
	}
}

func TestNewSandboxedState_InstructionLimit(t *testing.T) {
	L := scripting.NewSandboxedState(1000)
	defer L.Close()

	err := L.DoString(`while true do end`)
	assert.Error(t, err, "infinite loop must be terminated by the opcode limit")
}

func TestCallStringFunc_ReturnsResult(t *testing.T) {
	L := scripting.NewSandboxedState(0)
	defer L.Close()

	require.NoError(t, L.DoString(`function pick(n) if n > 5 then return "big" end return "small" end`))

	got, err := scripting.CallStringFunc(L, "pick", lua.LNumber(9))
	require.NoError(t, err)
	assert.Equal(t, "big", got)

	got, err = scripting.CallStringFunc(L, "pick", lua.LNumber(1))
	require.NoError(t, err)
	assert.Equal(t, "small", got)
}

func TestCallStringFunc_UndefinedIsEmpty(t *testing.T) {
	L := scripting.NewSandboxedState(0)
	defer L.Close()

	got, err := scripting.CallStringFunc(L, "nope")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCallStringFunc_NonStringResultIsEmpty(t *testing.T) {
	L := scripting.NewSandboxedState(0)
	defer L.Close()

	require.NoError(t, L.DoString(`function odd() return 42 end`))
	got, err := scripting.CallStringFunc(L, "odd")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCallStringFunc_ErrorPropagates(t *testing.T) {
	L := scripting.NewSandboxedState(0)
	defer L.Close()

	require.NoError(t, L.DoString(`function boom() error("nope") end`))
	_, err := scripting.CallStringFunc(L, "boom")
	assert.Error(t, err)
}
