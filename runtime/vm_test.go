package fsruntime_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gosuda/flatscript/parser"
	fsruntime "github.com/gosuda/flatscript/runtime"
)

func newVM(t *testing.T, src string) *fsruntime.VM {
	t.Helper()
	prog, err := parser.Parse(strings.Fields(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	vm, err := fsruntime.New(prog)
	if err != nil {
		t.Fatalf("new vm failed: %v", err)
	}
	return vm
}

func texts(out []fsruntime.Output) []string {
	lines := make([]string, 0, len(out))
	for _, o := range out {
		lines = append(lines, o.Text)
	}
	return lines
}

func runLines(t *testing.T, vm *fsruntime.VM) []string {
	t.Helper()
	out, err := vm.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return texts(out)
}

func expectLines(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, "\n") != strings.Join(want, "\n") || len(got) != len(want) {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

func TestNewRejectsNilProgram(t *testing.T) {
	if _, err := fsruntime.New(nil); err == nil {
		t.Fatalf("expected error for nil program")
	}
}

func TestArithmeticAndPrint(t *testing.T) {
	vm := newVM(t, `
int a = 7 ;
int h = a / 2 ;
int m = a * 3 ;
int d = a - 10 ;
int y = zz + 1 ;
int zero = 0 ;
int z = a / zero ;
print h ; print m ; print d ; print y ; print z ; print nope ;
`)
	expectLines(t, runLines(t, vm), "3.5", "21", "-3", "undefined", "undefined", "nope")
}

func TestPrintRawTokenKeepsQuotes(t *testing.T) {
	vm := newVM(t, `print "hello" ; int s = "hello" ; print s ;`)
	expectLines(t, runLines(t, vm), `"hello"`, "hello")
}

func TestTextConcatenation(t *testing.T) {
	vm := newVM(t, `int g = "hi" ; int n = 3 ; int s = g + n ; print s ; int bad = g * n ; print bad ;`)
	expectLines(t, runLines(t, vm), "hi3", "undefined")
}

func TestAssignmentCreatesUndeclaredName(t *testing.T) {
	vm := newVM(t, "int one = 1 ; fresh = one + 1 ; print fresh ;")
	expectLines(t, runLines(t, vm), "2")
	if v := vm.Globals()["fresh"]; v.String() != "2" {
		t.Fatalf("unexpected global: %v", v)
	}
}

func TestIfElse(t *testing.T) {
	vm := newVM(t, `
int a = 5 ;
if ( a > 3 ) { print big ; } else { print small ; }
if ( a < 3 ) { print big ; } else { print small ; }
if ( a == 5 ) { print five ; }
if ( a == 6 ) { print six ; }
if ( q == r ) { print undefinedEqual ; }
`)
	expectLines(t, runLines(t, vm), "big", "small", "five", "undefinedEqual")
}

func TestMixedKindsNeverCompareEqual(t *testing.T) {
	vm := newVM(t, `int s = "5" ; if ( s == 5 ) { print yes ; } else { print no ; }`)
	expectLines(t, runLines(t, vm), "no")
}

func TestWhileRunsExactIterations(t *testing.T) {
	vm := newVM(t, `
int i = 0 ;
while ( i < 3 ) {
	print i ;
	i = i + 1 ;
	print after ;
}
print i ;
`)
	expectLines(t, runLines(t, vm), "0", "after", "1", "after", "2", "after", "3")
}

func TestForLoop(t *testing.T) {
	vm := newVM(t, `
int total = 0 ;
for ( int i = 1 ; i < 5 ; i = i + 1 ; ) {
	total = total + i ;
}
print total ;
print i ;
`)
	expectLines(t, runLines(t, vm), "10", "5")
}

func TestFunctionCallAndReturn(t *testing.T) {
	vm := newVM(t, `
fun add ( a , b ) { return a + b ; }
int r = add ( 2 , 3 ) ;
print r ;
int x = 10 ;
int s = add ( x , r ) ;
print s ;
`)
	expectLines(t, runLines(t, vm), "5", "15")
	if got := vm.Functions(); len(got) != 1 || got[0] != "add" {
		t.Fatalf("unexpected functions: %v", got)
	}
}

func TestFramesAreIsolated(t *testing.T) {
	vm := newVM(t, `
int g = 1 ;
fun peek ( ) { print g ; int local = 9 ; }
peek ( ) ;
print local ;
`)
	expectLines(t, runLines(t, vm), "g", "local")
}

func TestArityMismatch(t *testing.T) {
	vm := newVM(t, `
fun two ( a , b ) { print a ; print b ; }
two ( 1 ) ;
two ( 1 , 2 , 3 ) ;
`)
	expectLines(t, runLines(t, vm), "1", "b", "1", "2")
}

func TestStringArgumentsBindAsText(t *testing.T) {
	prog, err := parser.Parse([]string{"fun", "greet", "(", "n", ")", "{", "print", "n", ";", "}",
		"greet", "(", `"bob"`, ")", ";"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	vm, _ := fsruntime.New(prog)
	expectLines(t, runLines(t, vm), "bob")
}

func TestCallWithoutReturnIsUndefined(t *testing.T) {
	vm := newVM(t, "fun f ( ) { } int v = f ( ) ; print v ;")
	expectLines(t, runLines(t, vm), "undefined")
}

func TestLastDefinitionWins(t *testing.T) {
	vm := newVM(t, `
fun f ( ) { return 1 ; }
int a = f ( ) ;
fun f ( ) { return 2 ; }
int b = f ( ) ;
print a ; print b ;
`)
	expectLines(t, runLines(t, vm), "1", "2")
}

func TestFunctionNotFoundHalts(t *testing.T) {
	vm := newVM(t, "print before ; missing ( 1 ) ; print after ;")
	var seen []string
	vm.SetOutputHook(func(o fsruntime.Output) { seen = append(seen, o.Text) })
	_, err := vm.Run(context.Background())
	var nf *fsruntime.FunctionNotFoundError
	if !errors.As(err, &nf) || nf.Name != "missing" {
		t.Fatalf("expected function not found, got %v", err)
	}
	expectLines(t, seen, "before")
}

func TestFunctionUsedBeforeDefinition(t *testing.T) {
	vm := newVM(t, "int r = later ( ) ; fun later ( ) { return 1 ; }")
	var nf *fsruntime.FunctionNotFoundError
	if _, err := vm.Run(context.Background()); !errors.As(err, &nf) {
		t.Fatalf("expected function not found, got %v", err)
	}
}

// A return inside a loop body only ends that pass through the body; the
// loop keeps re-checking its condition and the function falls off the end.
func TestReturnInsideWhileIsDiscarded(t *testing.T) {
	vm := newVM(t, `
fun count ( n ) {
	int i = 0 ;
	while ( i < n ) {
		i = i + 1 ;
		print i ;
		return i + 0 ;
		print unreachable ;
	}
	print done ;
}
int r = count ( 3 ) ;
print r ;
`)
	expectLines(t, runLines(t, vm), "1", "2", "3", "done", "undefined")
}

func TestReturnInsideIfAndForIsDiscarded(t *testing.T) {
	vm := newVM(t, `
fun pick ( ) {
	if ( 1 < 2 ) { return 5 ; }
	for ( int i = 0 ; i < 2 ; i = i + 1 ; ) { return 6 ; }
	return 7 ;
}
int r = pick ( ) ;
print r ;
`)
	expectLines(t, runLines(t, vm), "7")
}

func TestReturnPropagateMode(t *testing.T) {
	vm := newVM(t, `
fun pick ( ) {
	if ( 1 < 2 ) { return 5 ; }
	return 7 ;
}
fun first ( n ) {
	for ( int i = 0 ; i < n ; i = i + 1 ; ) {
		while ( 1 < 2 ) { return i + 0 ; }
	}
	return 99 ;
}
int a = pick ( ) ;
int b = first ( 4 ) ;
print a ; print b ;
`)
	vm.SetReturnMode(fsruntime.ReturnPropagate)
	expectLines(t, runLines(t, vm), "5", "0")
}

func TestReturnExpressionUsesCalleeFrame(t *testing.T) {
	vm := newVM(t, `
int v = 100 ;
fun f ( ) { int v = 1 ; return v + 1 ; }
int r = f ( ) ;
print r ;
`)
	expectLines(t, runLines(t, vm), "2")
}

func TestTopLevelReturnIsIgnored(t *testing.T) {
	vm := newVM(t, "return missing ( ) ; print still ;")
	expectLines(t, runLines(t, vm), "still")
}

func TestRecursion(t *testing.T) {
	src := `
fun fact ( n ) {
	int r = 1 ;
	if ( n > 1 ) {
		int m = n - 1 ;
		int s = fact ( m ) ;
		r = n * s ;
	}
	return r * 1 ;
}
int f = fact ( 5 ) ;
print f ;
`
	expectLines(t, runLines(t, newVM(t, src)), "120")
}

func TestRunawayRecursionFails(t *testing.T) {
	vm := newVM(t, "fun loop ( ) { loop ( ) ; } loop ( ) ;")
	if _, err := vm.Run(context.Background()); !errors.Is(err, fsruntime.ErrCallDepth) {
		t.Fatalf("expected call depth error, got %v", err)
	}
}

func TestReadQueuedInput(t *testing.T) {
	vm := newVM(t, "read a ; read b ; int c = a + 1 ; print c ; print b ;")
	vm.EnqueueInput("41", "words")
	if vm.PendingInput() != 2 {
		t.Fatalf("unexpected pending input: %d", vm.PendingInput())
	}
	expectLines(t, runLines(t, vm), "42", "words")
	if got := vm.Globals()["b"]; got.Kind() != fsruntime.TextKind {
		t.Fatalf("unexpected kind: %v", got.Kind())
	}
	if vm.PendingInput() != 0 {
		t.Fatalf("queue not drained")
	}
}

func TestReadProviderAndPrompt(t *testing.T) {
	vm := newVM(t, "read n ; print n ;")
	var prompts []string
	vm.SetInputProvider(func(ctx context.Context, req fsruntime.InputRequest) (string, error) {
		prompts = append(prompts, req.Prompt)
		return "7", nil
	})
	expectLines(t, runLines(t, vm), "7")
	expectLines(t, prompts, "Enter the value of n: ")

	vm.SetPrompt("{name} = ")
	prompts = nil
	runLines(t, vm)
	expectLines(t, prompts, "n = ")
}

func TestReadEchoQueuedInput(t *testing.T) {
	vm := newVM(t, "read n ; print n ;")
	vm.SetEchoInput(true)
	vm.EnqueueInput("3")
	out, err := vm.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(out) != 2 || !out[0].Input || out[0].Text != "Enter the value of n: 3" || out[1].Input {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestReadWithoutInput(t *testing.T) {
	vm := newVM(t, "read n ;")
	_, err := vm.Run(context.Background())
	if !errors.Is(err, fsruntime.ErrInputUnavailable) {
		t.Fatalf("expected input error, got %v", err)
	}
	boom := errors.New("boom")
	vm.SetInputProvider(func(ctx context.Context, req fsruntime.InputRequest) (string, error) {
		return "", boom
	})
	if _, err := vm.Run(context.Background()); !errors.Is(err, boom) || !strings.Contains(err.Error(), "read n") {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	vm := newVM(t, `
fun sq ( x ) { return x * x ; }
read n ;
int i = 0 ;
while ( i < n ) { int s = sq ( i ) ; print s ; i = i + 1 ; }
`)
	vm.EnqueueInput("4")
	first := runLines(t, vm)
	vm.EnqueueInput("4")
	second := runLines(t, vm)
	expectLines(t, first, "0", "1", "4", "9")
	expectLines(t, second, first...)
}

func TestRunCancellation(t *testing.T) {
	vm := newVM(t, "while ( 1 < 2 ) { print tick ; }")
	ctx, cancel := context.WithCancel(context.Background())
	count := 0
	vm.SetOutputHook(func(fsruntime.Output) {
		count++
		if count == 3 {
			cancel()
		}
	})
	if _, err := vm.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if count != 3 {
		t.Fatalf("unexpected output count after cancel: %d", count)
	}

	empty := newVM(t, "while ( 1 < 2 ) { }")
	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	if _, err := empty.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}
