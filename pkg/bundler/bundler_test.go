package bundler_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/arthur-debert/bundlr/pkg/bundler"
	"github.com/arthur-debert/bundlr/pkg/errors"
	"github.com/arthur-debert/bundlr/pkg/testutil"
	"github.com/arthur-debert/bundlr/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, run *bundler.Run) types.Outcome {
	t.Helper()
	select {
	case <-run.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("run did not finish")
	}
	out, ok := run.Outcome()
	require.True(t, ok)
	return out
}

func TestNew_BuiltinOrder(t *testing.T) {
	b := bundler.New(bundler.WithFS(testutil.NewTestFS()))

	assert.Equal(t, []string{bundler.HTTPPattern, bundler.CatchAllPattern}, b.Resolvers())
	assert.Equal(t, []string{`\.tsx$`, `\.ts$`, `\.jsx$`, `\.css$`, bundler.CatchAllPattern}, b.Transforms())
}

func TestScript_ConcatenatesInOrder(t *testing.T) {
	compactor, sink := &testutil.MockCompactor{}, &testutil.MockSink{}
	b := bundler.New(
		bundler.WithFS(testutil.NewTestFS()),
		bundler.WithCompactor(types.KindScript, compactor),
		bundler.WithSink(sink),
	)
	require.NoError(t, b.RegisterResolver(`\.txt$`, testutil.StaticResolver(map[string]string{
		"a.txt": "X",
		"b.txt": "Y",
	}, nil)))

	req := types.NewRequest("a.txt", "b.txt")
	req.Compress = false

	out := waitFor(t, b.Script(context.Background(), req))
	require.True(t, out.OK(), out.Message())
	assert.Equal(t, "X\nY", out.Code)
	assert.Empty(t, out.Destination)
	assert.Zero(t, compactor.Calls())
	assert.Zero(t, sink.Calls())
}

func TestStyle_CompactsWithKindCompactor(t *testing.T) {
	compactor := &testutil.MockCompactor{}
	b := bundler.New(
		bundler.WithFS(testutil.NewTestFS()),
		bundler.WithCompactor(types.KindStyle, compactor),
	)
	require.NoError(t, b.RegisterResolver(`\.style$`, testutil.StaticResolver(map[string]string{
		"a.style": ".x { color: red; }",
	}, nil)))

	out := b.Style(context.Background(), types.NewRequest("a.style")).Wait()
	require.True(t, out.OK(), out.Message())
	assert.Equal(t, ".x{color:red;}", out.Code)
	assert.Equal(t, 1, compactor.Calls())
}

func TestScript_MissingSourceFails(t *testing.T) {
	compactor, sink := &testutil.MockCompactor{}, &testutil.MockSink{}
	b := bundler.New(
		bundler.WithFS(testutil.NewTestFS()),
		bundler.WithCompactor(types.KindScript, compactor),
		bundler.WithSink(sink),
	)
	require.NoError(t, b.RegisterResolver(`\.txt$`, testutil.StaticResolver(nil, nil)))

	req := types.NewRequest("missing.txt")
	req.Destination = "dist/out.js"

	out := b.Script(context.Background(), req).Wait()
	require.False(t, out.OK())
	assert.Empty(t, out.Code)
	assert.Contains(t, out.Message(), "not found")
	assert.True(t, errors.IsErrorCode(out.Err, errors.ErrResolve))

	details := errors.GetErrorDetails(out.Err)
	assert.Equal(t, "missing.txt", details["source"])
	assert.Equal(t, 0, details["index"])
	assert.Equal(t, "js", details["kind"])

	assert.Zero(t, compactor.Calls())
	assert.Zero(t, sink.Calls())
}

func TestScript_SinkFailure(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFiles(t, fsys, map[string]string{"a.js": "var a = 1;"})

	b := bundler.New(bundler.WithFS(fsys), bundler.WithSink(testutil.FailingSink("disk full")))

	req := types.NewRequest("a.js")
	req.Destination = "dist/out.js"

	out := b.Script(context.Background(), req).Wait()
	require.False(t, out.OK())
	assert.Empty(t, out.Code)
	assert.Contains(t, out.Message(), "disk full")
	assert.Equal(t, errors.ErrPersist, errors.GetErrorCode(out.Err))
}

func TestScript_FailFastCallOrder(t *testing.T) {
	sources := []string{"a.txt", "b.txt", "c.txt", "d.txt"}
	all := map[string]string{"a.txt": "A", "b.txt": "B", "c.txt": "C", "d.txt": "D"}

	tests := []struct {
		name     string
		contents map[string]string
		failOn   string
		code     errors.ErrorCode
		calls    []string
	}{
		{
			name:     "resolve fails at the third source",
			contents: map[string]string{"a.txt": "A", "b.txt": "B", "d.txt": "D"},
			code:     errors.ErrResolve,
			calls:    []string{"resolve a.txt", "resolve b.txt", "resolve c.txt"},
		},
		{
			name:     "transform fails at the third source",
			contents: all,
			failOn:   `^c\.txt$`,
			code:     errors.ErrTransform,
			calls: []string{
				"resolve a.txt", "resolve b.txt", "resolve c.txt", "resolve d.txt",
				"transform a.txt", "transform b.txt", "transform c.txt",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &testutil.Recorder{}
			compactor, sink := &testutil.MockCompactor{}, &testutil.MockSink{}
			b := bundler.New(
				bundler.WithFS(testutil.NewTestFS()),
				bundler.WithCompactor(types.KindScript, compactor),
				bundler.WithSink(sink),
			)
			require.NoError(t, b.RegisterResolver(`\.txt$`, testutil.StaticResolver(tt.contents, rec)))
			require.NoError(t, b.RegisterTransform(`\.txt$`, testutil.TaggingTransform("t:", rec)))
			if tt.failOn != "" {
				require.NoError(t, b.RegisterTransform(tt.failOn, func(_ context.Context, name, _ string, _ *types.Request) (string, error) {
					rec.Record("transform %s", name)
					return "", fmt.Errorf("cannot compile %s", name)
				}))
			}

			req := types.NewRequest(sources...)
			req.Destination = "dist/out.js"

			out := b.Script(context.Background(), req).Wait()
			require.False(t, out.OK())
			assert.Empty(t, out.Code)
			assert.Equal(t, tt.code, errors.GetErrorCode(out.Err))
			assert.Equal(t, 2, errors.GetErrorDetails(out.Err)["index"])
			assert.Equal(t, "c.txt", errors.GetErrorDetails(out.Err)["source"])

			assert.Equal(t, tt.calls, rec.Calls())
			assert.Zero(t, compactor.Calls())
			assert.Zero(t, sink.Calls())
		})
	}
}

func TestScript_RepeatableOutput(t *testing.T) {
	rec := &testutil.Recorder{}
	b := bundler.New(
		bundler.WithFS(testutil.NewTestFS()),
		bundler.WithCompactor(types.KindScript, &testutil.MockCompactor{}),
	)
	require.NoError(t, b.RegisterResolver(`\.txt$`, testutil.StaticResolver(map[string]string{
		"a.txt": "var a = 1;",
		"b.txt": "var b = 2;",
	}, rec)))
	require.NoError(t, b.RegisterTransform(`\.txt$`, testutil.TaggingTransform("/*t*/ ", rec)))

	req := types.NewRequest("a.txt", "b.txt")

	first := b.Script(context.Background(), req).Wait()
	require.True(t, first.OK(), first.Message())
	firstCalls := rec.Calls()

	second := b.Script(context.Background(), req).Wait()
	require.True(t, second.OK(), second.Message())

	assert.Equal(t, []byte(first.Code), []byte(second.Code))
	assert.Equal(t, first, second)
	assert.Equal(t, append(firstCalls, firstCalls...), rec.Calls())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	b := bundler.New(
		bundler.WithFS(testutil.NewTestFS()),
		bundler.WithLogger(zerolog.New(&buf)),
	)
	require.NoError(t, b.RegisterResolver(`\.txt$`, testutil.StaticResolver(map[string]string{"a.txt": "A"}, nil)))

	req := types.NewRequest("a.txt")
	req.Compress = false
	out := b.Script(context.Background(), req).Wait()
	require.True(t, out.OK(), out.Message())

	assert.Contains(t, buf.String(), `"message":"Bundle completed"`)
	assert.Contains(t, buf.String(), `"kind":"js"`)
}

func TestBundle_LocalFilesToFileSink(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFiles(t, fsys, map[string]string{
		"assets/a.css": ".a { color: red; }",
		"assets/b.css": ".b { margin: 0px; }",
	})

	b := bundler.New(bundler.WithFS(fsys))

	req := types.NewRequest("a.css", "b.css")
	req.BasePath = "assets"
	req.Destination = "public/app.css"

	out := b.Style(context.Background(), req).Wait()
	require.True(t, out.OK(), out.Message())
	assert.Equal(t, "public/app.css", out.Destination)
	assert.NotContains(t, out.Code, "\n")
	assert.Contains(t, out.Code, ".a{color:red}")

	written, err := fsys.ReadFile("public/app.css")
	require.NoError(t, err)
	assert.Equal(t, out.Code, string(written))
}

func TestBundle_TypeScriptIsCompiled(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFiles(t, fsys, map[string]string{
		"main.ts":  "const greeting: string = 'hi';\nconsole.log(greeting);",
		"plain.js": "console.log(1);",
	})

	b := bundler.New(bundler.WithFS(fsys))
	req := types.NewRequest("main.ts", "plain.js")
	req.Compress = false

	out := b.Script(context.Background(), req).Wait()
	require.True(t, out.OK(), out.Message())
	assert.NotContains(t, out.Code, ": string")
	assert.True(t, strings.HasSuffix(out.Code, "\nconsole.log(1);"))
}

func TestBundle_TransformFailure(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFiles(t, fsys, map[string]string{"broken.ts": "const = ;"})

	sink := &testutil.MockSink{}
	b := bundler.New(bundler.WithFS(fsys), bundler.WithSink(sink))
	req := types.NewRequest("broken.ts")
	req.Destination = "out.js"

	out := b.Script(context.Background(), req).Wait()
	require.False(t, out.OK())
	assert.Equal(t, errors.ErrTransform, errors.GetErrorCode(out.Err))
	assert.Contains(t, out.Message(), "broken.ts:1:")
	assert.Zero(t, sink.Calls())
}

func TestBundle_HTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.js" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = fmt.Fprint(w, "remote();")
	}))
	defer srv.Close()

	fsys := testutil.NewTestFS()
	testutil.WriteFiles(t, fsys, map[string]string{"local.js": "local();"})
	b := bundler.New(bundler.WithFS(fsys), bundler.WithHTTPClient(srv.Client()))

	req := types.NewRequest(srv.URL+"/lib.js", "local.js")
	req.Compress = false
	out := b.Script(context.Background(), req).Wait()
	require.True(t, out.OK(), out.Message())
	assert.Equal(t, "remote();\nlocal();", out.Code)

	req = types.NewRequest("local.js", srv.URL+"/missing.js")
	out = b.Script(context.Background(), req).Wait()
	require.False(t, out.OK())
	assert.Contains(t, out.Message(), "HTTP status code was 404")
	assert.Equal(t, 1, errors.GetErrorDetails(out.Err)["index"])
}

func TestRegisterResolver_OverridesBuiltin(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFiles(t, fsys, map[string]string{"a.js": "from disk"})

	b := bundler.New(bundler.WithFS(fsys))
	require.NoError(t, b.RegisterResolver(`\.js$`, testutil.StaticResolver(map[string]string{"a.js": "from stub"}, nil)))

	req := types.NewRequest("a.js")
	req.Compress = false

	out := b.Script(context.Background(), req).Wait()
	require.True(t, out.OK(), out.Message())
	assert.Equal(t, "from stub", out.Code)

	assert.True(t, b.UnregisterResolver(`\.js$`))
	out = b.Script(context.Background(), req).Wait()
	require.True(t, out.OK(), out.Message())
	assert.Equal(t, "from disk", out.Code)
}

func TestRegisterTransform_NewestFirst(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFiles(t, fsys, map[string]string{"a.js": "A"})

	b := bundler.New(bundler.WithFS(fsys))
	require.NoError(t, b.RegisterTransform(`\.js$`, testutil.TaggingTransform("first:", nil)))
	require.NoError(t, b.RegisterTransform(`^a\.`, testutil.TaggingTransform("second:", nil)))

	req := types.NewRequest("a.js")
	req.Compress = false

	out := b.Script(context.Background(), req).Wait()
	require.True(t, out.OK(), out.Message())
	assert.Equal(t, "second:A", out.Code)
}

func TestRegister_InvalidPattern(t *testing.T) {
	b := bundler.New(bundler.WithFS(testutil.NewTestFS()))
	err := b.RegisterResolver("(", testutil.StaticResolver(nil, nil))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	err = b.RegisterTransform("", testutil.TaggingTransform("", nil))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestUnregister_Unknown(t *testing.T) {
	b := bundler.New(bundler.WithFS(testutil.NewTestFS()))
	assert.False(t, b.UnregisterResolver(`\.nothing$`))
	assert.False(t, b.UnregisterTransform(`\.nothing$`))
}

func TestCatchAllRemoved_NoMatch(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteFiles(t, fsys, map[string]string{"a.txt": "A"})

	b := bundler.New(bundler.WithFS(fsys))
	require.True(t, b.UnregisterTransform(bundler.CatchAllPattern))

	out := b.Script(context.Background(), types.NewRequest("a.txt")).Wait()
	require.False(t, out.OK())
	assert.Equal(t, errors.ErrTransform, errors.GetErrorCode(out.Err))
	assert.True(t, errors.IsErrorCode(out.Err, errors.ErrNoMatch))
}

func TestBundle_InvalidRequest(t *testing.T) {
	b := bundler.New(bundler.WithFS(testutil.NewTestFS()))

	for _, req := range []*types.Request{nil, types.NewRequest(), types.NewRequest("a.js", "")} {
		out := b.Script(context.Background(), req).Wait()
		require.False(t, out.OK())
		assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(out.Err))
	}
}

func TestBundle_UnknownKind(t *testing.T) {
	b := bundler.New(bundler.WithFS(testutil.NewTestFS()))
	run := b.Bundle(context.Background(), types.Kind(42), types.NewRequest("a.js"))

	out, ok := run.Outcome()
	require.True(t, ok)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(out.Err))
}

func TestBundle_RequestIsCopied(t *testing.T) {
	release := make(chan struct{})
	b := bundler.New(bundler.WithFS(testutil.NewTestFS()))
	require.NoError(t, b.RegisterResolver(bundler.CatchAllPattern, func(ctx context.Context, source string, _ *types.Request) (string, error) {
		<-release
		return source, nil
	}))

	req := types.NewRequest("a", "b")
	req.Compress = false
	run := b.Script(context.Background(), req)
	req.Sources[0] = "changed"
	close(release)

	out := run.Wait()
	require.True(t, out.OK(), out.Message())
	assert.Equal(t, "a\nb", out.Code)
}

func TestBundle_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := bundler.New(bundler.WithFS(testutil.NewTestFS()))
	require.NoError(t, b.RegisterResolver(bundler.CatchAllPattern, func(context.Context, string, *types.Request) (string, error) {
		cancel()
		return "x", nil
	}))

	out := b.Script(ctx, types.NewRequest("a", "b")).Wait()
	require.False(t, out.OK())
	assert.True(t, errors.IsErrorCode(out.Err, errors.ErrCanceled))
}

func TestBundle_PanicBecomesOutcome(t *testing.T) {
	b := bundler.New(bundler.WithFS(testutil.NewTestFS()))
	require.NoError(t, b.RegisterResolver(bundler.CatchAllPattern, func(context.Context, string, *types.Request) (string, error) {
		panic("boom")
	}))

	out := b.Script(context.Background(), types.NewRequest("a")).Wait()
	require.False(t, out.OK())
	assert.Equal(t, errors.ErrInternal, errors.GetErrorCode(out.Err))
	assert.Contains(t, out.Message(), "boom")
}

func TestBundle_ConcurrentRunsAreIndependent(t *testing.T) {
	b := bundler.New(bundler.WithFS(testutil.NewTestFS()))
	require.NoError(t, b.RegisterResolver(bundler.CatchAllPattern, func(_ context.Context, source string, _ *types.Request) (string, error) {
		return strings.ToUpper(source), nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := types.NewRequest(fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i))
			req.Compress = false
			out := b.Script(context.Background(), req).Wait()
			assert.True(t, out.OK())
			assert.Equal(t, fmt.Sprintf("A%d\nB%d", i, i), out.Code)
		}(i)
	}
	wg.Wait()
}

func TestRun_OutcomeIsStable(t *testing.T) {
	b := bundler.New(bundler.WithFS(testutil.NewTestFS()))
	require.NoError(t, b.RegisterResolver(bundler.CatchAllPattern, testutil.StaticResolver(map[string]string{"a": "A"}, nil)))

	req := types.NewRequest("a")
	req.Compress = false
	run := b.Script(context.Background(), req)

	first := run.Wait()
	second := run.Wait()
	assert.Equal(t, first, second)
	assert.Equal(t, types.KindScript, run.Kind())
}
