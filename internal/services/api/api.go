// Package api provides the HTTP API for the application
package api

import (
	"dreammap/internal/platform/config"
	"dreammap/internal/platform/logger"
	phttp "dreammap/internal/platform/net/http"
	"dreammap/internal/platform/net/middleware"
	"dreammap/internal/platform/store"

	"dreammap/internal/modkit"
	"dreammap/internal/modkit/httpkit"
	"dreammap/internal/modkit/module"
	"dreammap/internal/modkit/swaggerkit"

	dreamsdomain "dreammap/internal/services/api/dreams/domain"
	dreamsmod "dreammap/internal/services/api/dreams/module"
	identitymod "dreammap/internal/services/api/identity/module"
	metamod "dreammap/internal/services/api/meta/module"
	rldomain "dreammap/internal/services/api/ratelimit/domain"
	rlmod "dreammap/internal/services/api/ratelimit/module"
	regionsmod "dreammap/internal/services/api/regions/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf // root config, unprefixed
	Store          *store.Store
	Logger         *logger.Logger
	Throttle       *middleware.Limiters // nil disables the edge throttle
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router and returns the
// modules in mount order
func Mount(r phttp.Router, opt Options) []modkit.Module {
	log := opt.Logger
	if log == nil {
		log = logger.Get()
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log: *log,
		Cfg: opt.Config,
	}.FromStore(opt.Store)

	// ratelimit owns the history backend; dreams consumes its Limiter port
	rl := rlmod.New(deps)
	dreams := dreamsmod.New(deps, modkit.WithPorts(dreamsmod.Ports{
		Limiter: module.MustPortsOf[rldomain.ServicePort](rl),
	}))

	// regions aggregates over the dreams Source port
	regions := regionsmod.New(deps, modkit.WithPorts(regionsmod.Ports{
		Source: module.MustPortsOf[dreamsdomain.Source](dreams),
	}))

	mods := []modkit.Module{
		metamod.New(deps),
		identitymod.New(deps),
		rl,
		dreams,
		regions,
	}

	stack := httpkit.StackOptionsFrom(opt.Config.Prefix("CORE_API_"))
	stack.Throttle = opt.Throttle
	stack.SkipPaths = []string{"/api/v1/meta/health"}

	// Swagger + profiler live outside the versioned scope
	swaggerkit.Mount(r, opt.EnableSwagger, "")
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	return mods
}
