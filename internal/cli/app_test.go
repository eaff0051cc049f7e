package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azim218/RentMyWaifu/internal/common"
	"github.com/azim218/RentMyWaifu/internal/config"
	"github.com/azim218/RentMyWaifu/internal/logging"
	"github.com/azim218/RentMyWaifu/internal/models"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	app, err := NewApp(context.Background(), cfg, logger)
	require.NoError(t, err)
	return app
}

// scriptInput replaces the interactive input seams with queued answers.
func scriptInput(t *testing.T, texts []string, passwords []string) {
	t.Helper()

	origText, origPassword := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPassword })

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			t.Fatal("unexpected text prompt")
		}
		next := texts[0]
		texts = texts[1:]
		return next, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			t.Fatal("unexpected password prompt")
		}
		next := passwords[0]
		passwords = passwords[1:]
		return []byte(next), nil
	}
}

func TestApp_RegisterThenLogin(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	scriptInput(t, []string{"alice", "alice"}, []string{"pw1", "pw1"})

	require.NoError(t, app.Register(ctx))
	assert.False(t, app.isLoggedIn(), "registration must not log the user in")

	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())
	assert.Equal(t, "alice", app.session.Username)
	assert.False(t, app.session.IsAdmin)
	assert.Equal(t, 100, app.session.Points)
	assert.Equal(t, models.StatusBronze, app.session.Status)
}

func TestApp_SeededAdminLoginAndCatalogEdit(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	scriptInput(t,
		[]string{common.AdminUsername, "GenshinPro", "Ultimate"},
		[]string{"YTREWQ"},
	)

	require.NoError(t, app.Login(ctx))
	require.True(t, app.isAdmin())

	require.NoError(t, app.SetStatus(ctx))

	all, err := app.catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUltimate, all[0].Status)
}

func TestApp_NonAdminCatalogEditDenied(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	scriptInput(t,
		[]string{"bob", "bob", "GenshinPro", "Silver"},
		[]string{"pw1", "pw1"},
	)

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Login(ctx))

	err := app.SetStatus(ctx)
	assert.ErrorIs(t, err, common.ErrPermissionDenied)
}

func TestApp_GuestSupportSubmission(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	// Support reads email and subject through the seam; the message body
	// comes from the app reader.
	scriptInput(t, []string{"guest@example.com", "hello"}, nil)
	app.reader = bufio.NewReader(strings.NewReader("need help\n\n"))

	require.NoError(t, app.Support(ctx))

	recent, err := app.support.ListRecent(ctx, 5, &models.Session{Username: common.AdminUsername, IsAdmin: true})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, common.GuestName, recent[0].User)
	assert.Equal(t, "guest@example.com", recent[0].Email)
	assert.Equal(t, "need help", recent[0].Message)
}

func TestApp_LogoutClearsSession(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	scriptInput(t, []string{common.AdminUsername}, []string{"YTREWQ"})
	require.NoError(t, app.Login(ctx))

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
	assert.False(t, app.isAdmin())
}
