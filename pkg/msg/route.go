package msg

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrNoHandler = errors.New("no matching handler found for the message")

type Router struct {
	Handlers    []Handler
	middlewares []Middleware
}

func (r *Router) UseMiddleware(m Middleware) {
	r.middlewares = append(r.middlewares, m)
}

func (r *Router) Route(ctx context.Context, req *Request) (*Response, error) {
	log := logrus.WithContext(ctx)

	if req.Meta == nil {
		req.Meta = map[string]interface{}{}
	}

	for _, m := range r.middlewares {
		resp, err := m.Handle(ctx, req)
		if err != nil {
			return nil, err
		}

		if resp != nil {
			log.Debugf("middleware %T responded, will skip handlers", m)
			return resp, nil
		}
	}

	for _, h := range r.Handlers {
		canHandle, err := h.CanHandle(ctx, req)
		if err != nil {
			return nil, err
		}

		if canHandle {
			log.Debugf("handler %T accepted the message", h)
			return h.Handle(ctx, req)
		}
	}

	return nil, errors.WithStack(ErrNoHandler)
}
