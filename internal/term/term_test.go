package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariableString(t *testing.T) {
	assert.Equal(t, "x", NewVar("x").String())
}

func TestLambdaString(t *testing.T) {
	l := Lambda{Arg: "x", Body: Lambda{Arg: "y", Body: NewVar("x")}}
	assert.Equal(t, `\x. \y. x`, l.String())
}

func TestApplyStringParenthesizesLambdaHead(t *testing.T) {
	a := Apply{T1: Lambda{Arg: "x", Body: NewVar("x")}, T2: NewVar("y")}
	assert.Equal(t, `(\x. x) y`, a.String())
}

func TestApplyStringParenthesizesNonVariableArg(t *testing.T) {
	a := Apply{T1: NewVar("f"), T2: Apply{T1: NewVar("g"), T2: NewVar("y")}}
	assert.Equal(t, "f (g y)", a.String())
}

func TestChurchNumeralsAndBooleans(t *testing.T) {
	assert.Equal(t, `\f. \x. x`, NewNum(0).String())
	assert.Equal(t, `\f. \x. f (f x)`, NewNum(2).String())
	assert.Equal(t, `\a. \b. a`, NewBool(true).String())
	assert.Equal(t, `\a. \b. b`, NewBool(false).String())
}
