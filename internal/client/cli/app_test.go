package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/iisclient/internal/client/client"
	"github.com/dmitrijs2005/iisclient/internal/client/config"
	"github.com/dmitrijs2005/iisclient/internal/client/result"
	"github.com/dmitrijs2005/iisclient/internal/client/transport"
	"github.com/dmitrijs2005/iisclient/internal/common"
	"github.com/dmitrijs2005/iisclient/internal/logging"
)

const testBaseURL = "https://iis.example/api/v1"

type routes struct {
	mu    sync.Mutex
	resp  map[string]transport.Response
	calls []string
}

func (r *routes) on(endpoint string, status int, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resp[testBaseURL+endpoint] = transport.Response{Success: true, StatusCode: status, Body: body}
}

func (r *routes) Execute(_ context.Context, req transport.Request) transport.Response {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, req.URL)
	if resp, ok := r.resp[req.URL]; ok {
		return resp
	}
	return transport.Response{Success: true, StatusCode: 404}
}

// stubInput replaces the interactive prompts for the duration of a test.
func stubInput(t *testing.T, text, password, pin string, yes bool) {
	t.Helper()
	oldText, oldPass, oldPIN, oldYes := getSimpleText, getPassword, getPIN, getYesNo
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
	getPIN = func(io.Writer) ([]byte, error) { return []byte(pin), nil }
	getYesNo = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return yes, nil }
	t.Cleanup(func() {
		getSimpleText, getPassword, getPIN, getYesNo = oldText, oldPass, oldPIN, oldYes
	})
}

func newTestApp(t *testing.T) (*App, *routes, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "iis.db"))
	require.NoError(t, err)

	r := &routes{resp: map[string]transport.Response{}}
	api := client.New(client.Options{BaseURL: testBaseURL, Transport: r})

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	a := newApp(cfg, logging.Discard(), api, db, rdr(""), &out)
	t.Cleanup(func() { a.Close(ctx) })
	return a, r, &out
}

func loginApp(t *testing.T, a *App, r *routes) {
	t.Helper()
	r.on(client.EndpointLogin, 200, `{"username":"12345","fio":"Петров Иван Сергеевич"}`)
	stubInput(t, "12345", "secret", "1234", false)
	require.NoError(t, a.Login(context.Background()))
}

func TestApp_Login(t *testing.T) {
	a, r, out := newTestApp(t)
	loginApp(t, a, r)

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "12345", a.status())
	assert.Contains(t, out.String(), "Welcome, Петров Иван Сергеевич!")
}

func TestApp_LoginRejected(t *testing.T) {
	a, r, _ := newTestApp(t)
	r.on(client.EndpointLogin, 401, `{"error":"Unauthorized","path":"/api/v1/auth/login"}`)
	stubInput(t, "12345", "wrong", "", false)

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, result.ErrUpstream)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "not logged in", a.status())
	assert.Contains(t, describeError(err), "(HTTP 401)")
}

func TestApp_FetchRequiresLogin(t *testing.T) {
	a, r, _ := newTestApp(t)

	err := a.Info(context.Background())
	require.Error(t, err)
	assert.Equal(t, result.MessageNotAuthenticated, describeError(err))
	assert.Empty(t, r.calls)
}

func TestApp_InfoMarkbookGroup(t *testing.T) {
	a, r, out := newTestApp(t)
	loginApp(t, a, r)
	ctx := context.Background()

	r.on(client.EndpointPersonalInfo, 200, `{"studentNumber":"12345","lastName":"Петров","firstName":"Иван","course":2,"faculty":"ФКСиС"}`)
	r.on(client.EndpointMarkbook, 200, `{"studentNumber":"12345","averageMark":8.5,"semesters":[{"number":1,"subjects":[{"name":"Физика","mark":9}]},{"number":2,"subjects":[{"name":"Химия"}]}]}`)
	r.on(client.EndpointGroupInfo, 200, `{"number":"121701","curator":{"fullName":"Сидоров С. С."},"students":[{"fio":"Петров Иван"}]}`)

	require.NoError(t, a.Info(ctx))
	assert.Contains(t, out.String(), "ФКСиС")

	out.Reset()
	require.NoError(t, a.Markbook(ctx, ""))
	assert.Contains(t, out.String(), "overall GPA 8.50")
	assert.Contains(t, out.String(), "Физика")
	assert.Contains(t, out.String(), "Химия")

	out.Reset()
	require.NoError(t, a.Markbook(ctx, "2"))
	assert.NotContains(t, out.String(), "Физика")
	assert.Contains(t, out.String(), "Химия")

	require.Error(t, a.Markbook(ctx, "7"))
	require.Error(t, a.Markbook(ctx, "abc"))

	out.Reset()
	require.NoError(t, a.Group(ctx))
	assert.Contains(t, out.String(), "121701")
	assert.Contains(t, out.String(), "Сидоров С. С.")
	assert.Contains(t, out.String(), "Петров Иван")
}

func TestApp_RememberRestoreForget(t *testing.T) {
	a, r, out := newTestApp(t)
	ctx := context.Background()

	require.ErrorIs(t, a.Remember(ctx), common.ErrorUnauthorized)

	loginApp(t, a, r)
	require.NoError(t, a.Remember(ctx))

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())

	stubInput(t, "", "", "0000", false)
	require.ErrorIs(t, a.Restore(ctx), common.ErrInvalidPIN)
	assert.False(t, a.isLoggedIn())

	stubInput(t, "", "", "1234", false)
	require.NoError(t, a.Restore(ctx))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "12345", a.status())

	out.Reset()
	require.NoError(t, a.Status(ctx))
	assert.Contains(t, out.String(), "Logged in as 12345")
	assert.Contains(t, out.String(), "Remembered session: 12345")

	require.NoError(t, a.Forget(ctx))
	require.ErrorIs(t, a.Restore(ctx), common.ErrNoSavedSession)
}

func TestApp_RunAnnouncesRememberedSession(t *testing.T) {
	a, r, out := newTestApp(t)
	ctx := context.Background()
	loginApp(t, a, r)
	require.NoError(t, a.Remember(ctx))

	captureOutput(t)
	a.reader = rdr("exit\n")
	a.Run(ctx)

	assert.True(t, strings.Contains(out.String(), "Remembered session for 12345"))
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "wrong PIN", describeError(common.ErrInvalidPIN))
	assert.Equal(t, "no remembered session", describeError(common.ErrNoSavedSession))
	assert.Equal(t, "network down", describeError(result.TransportFailure("network down")))
	assert.Equal(t, result.MessageDecodeFailure, describeError(result.DecodeFailure("x")))
}
