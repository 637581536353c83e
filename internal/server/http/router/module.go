package router

import "go.uber.org/fx"

// Module registers the gin engine serving the account API.
var Module = fx.Provide(Setup)
