package dashboard

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(initial Store) *Container {
	service := NewService(initial)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
