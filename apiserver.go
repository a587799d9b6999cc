// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"cqlbuild/builder"
	"cqlbuild/cnf"
	"cqlbuild/general"
	"cqlbuild/openapi"
	"cqlbuild/parsercheck"
	"cqlbuild/sketch"
	"cqlbuild/templates"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	redisConnectionTestTimeout = 120 * time.Second
)

type apiServer struct {
	server       *http.Server
	conf         *cnf.Conf
	version      general.VersionInfo
	templateRepo templates.Repository
	parserClient *parsercheck.Client
}

func mkServerInfo(conf *cnf.Conf, version general.VersionInfo) func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
			"name":    "CQLBUILD - a CQL compilation and word sketch query derivation server",
			"version": version,
			"conf": map[string]any{
				"timeZone":      conf.TimeZone,
				"defaultLocale": conf.Locales.DefaultLocale(),
			},
		})
	}
}

func mkPrivacyPolicy(conf *cnf.Conf) func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, conf.PrivacyPolicy)
	}
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(panicRecovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	protected := engine.Group("/").Use(AuthRequired(api.conf))

	engine.GET("/", mkServerInfo(api.conf, api.version))

	engine.GET("/privacy-policy", mkPrivacyPolicy(api.conf))

	engine.GET("/openapi", openapi.MkHandleRequest(api.conf, api.version.Version))

	bActions := builder.NewActions(api.parserClient, api.conf.Builder.MaxQueryElements)

	protected.POST(
		"/query/compile", bActions.CompileQuery)

	skActions := sketch.NewActions(api.conf.Sketch)

	protected.GET(
		"/sketch-query", skActions.SketchQuery)

	protected.GET(
		"/sketch-relations", skActions.Relations)

	tActions := templates.NewActions(api.templateRepo)

	protected.GET(
		"/templates", tActions.ListTemplates)

	protected.POST(
		"/templates", tActions.SaveTemplate)

	protected.DELETE(
		"/templates/:templateId", tActions.DeleteTemplate)

	if api.parserClient != nil {
		pActions := parsercheck.NewActions(api.parserClient)
		protected.GET("/parse", pActions.ParseQuery)
		log.Info().Str("url", api.conf.ParserServiceURL).Msg("enabling CQL parser proxy")

	} else {
		log.Info().Msg("CQL parser service not specified - /parse endpoint will be disabled")
	}

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

}

func (s *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down CQLBUILD HTTP API server")
	return s.server.Shutdown(ctx)
}

func runApiServer(conf *cnf.Conf, version general.VersionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var templateRepo templates.Repository
	if conf.Templates != nil {
		rrepo := templates.NewRedisRepository(conf.Templates, conf.TimezoneLocation())
		if err := rrepo.TestConnection(redisConnectionTestTimeout); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
			return
		}
		templateRepo = rrepo

	} else {
		log.Warn().Msg("using in-memory template storage")
		templateRepo = templates.NewInMemoryRepository(conf.TimezoneLocation())
	}

	var parserClient *parsercheck.Client
	if conf.ParserServiceURL != "" {
		parserClient = parsercheck.NewClient(conf.ParserServiceURL)
	}

	server := newAPIServer(conf, version, templateRepo, parserClient)

	services := []service{server}
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}

func newAPIServer(
	conf *cnf.Conf,
	version general.VersionInfo,
	templateRepo templates.Repository,
	parserClient *parsercheck.Client,
) *apiServer {
	return &apiServer{
		conf:         conf,
		version:      version,
		templateRepo: templateRepo,
		parserClient: parserClient,
	}
}
