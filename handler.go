package dogbot

type HandleFunc func(c *Context) (Response, error)

type Handler interface {
	Handle(c *Context) (Response, error)
}

type handleFuncHandler struct {
	handleFunc HandleFunc
}

func (h *handleFuncHandler) Handle(c *Context) (Response, error) {
	return h.handleFunc(c)
}

func NewHandler(handleFunc HandleFunc) Handler {
	return &handleFuncHandler{handleFunc: handleFunc}
}

type MiddlewareFunc func(c *Context, next func())
