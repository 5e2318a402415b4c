// Package webui serves the battery inventory web application: listing and
// filtering, add/edit/delete forms, brand selection, and feedback.
package webui

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battrack/pkg/config"
	"github.com/charlie0129/battrack/pkg/store"
)

// Server holds the dependencies of the request handlers.
type Server struct {
	conf     config.Config
	store    store.Store
	sessions sessions.Store
}

func New(conf config.Config, st store.Store) *Server {
	return &Server{
		conf:     conf,
		store:    st,
		sessions: sessions.NewCookieStore([]byte(conf.SessionSecret())),
	}
}

// Routes builds the gin engine with all handlers attached.
func (s *Server) Routes() *gin.Engine {
	if s.conf.Debug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.SetHTMLTemplate(loadTemplates())

	router.GET("/", s.index)
	router.GET("/add", s.addForm)
	router.POST("/add", s.add)
	router.GET("/edit/:id", s.editForm)
	router.POST("/edit/:id", s.edit)
	router.POST("/delete/:id", s.remove)
	router.GET("/settings", s.settingsForm)
	router.POST("/settings", s.updateSettings)
	router.GET("/feedback", s.feedbackForm)
	router.POST("/feedback", s.submitFeedback)

	return router
}

// Run starts the web server in the foreground and blocks until SIGINT or
// SIGTERM, then shuts down gracefully.
func Run(configPath, listenOverride, databaseOverride string) error {
	conf, err := config.NewFile(configPath)
	if err != nil {
		logrus.Fatalf("failed to parse config during startup: %v", err)
	}
	if listenOverride != "" {
		conf.SetListen(listenOverride)
	}
	if databaseOverride != "" {
		conf.SetDatabasePath(databaseOverride)
	}
	logrus.WithFields(conf.LogrusFields()).Infof("config loaded")

	// Receive SIGHUP to reload config
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			err := conf.Load()
			if err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			logrus.Infof("config reloaded")
		}
	}()

	st, err := store.Open(conf.DatabasePath())
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}

	srv := &http.Server{
		Addr:    conf.Listen(),
		Handler: New(conf, st).Routes(),
	}

	go func() {
		logrus.Infof("http server listening on %s", conf.Listen())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	logrus.Infof("caught signal \"%s\": shutting down.", sig)

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}
	cancel()

	logrus.Info("closing database")
	if err := st.Close(); err != nil {
		logrus.Errorf("failed to close database: %v", err)
	}

	logrus.Info("exiting")
	return nil
}
