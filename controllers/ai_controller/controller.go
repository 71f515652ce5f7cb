package ai_controller

import (
	"github.com/camilomiori/POSAI-frontend-sub000/ai"
)

// Controller exposes one intelligence engine over HTTP. The engine is
// injected so tests can run an isolated instance with deterministic
// configuration.
type Controller struct {
	Engine *ai.Engine
}

func New(engine *ai.Engine) *Controller {
	return &Controller{Engine: engine}
}
