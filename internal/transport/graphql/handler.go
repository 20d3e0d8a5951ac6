package graphql

import (
	"log/slog"
	"net/http"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"

	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/resolver"
)

// NewHandler builds the GraphQL endpoint. Authentication is left to the
// router; every request gets its own DataLoaders.
func NewHandler(log *slog.Logger, res *resolver.Resolver, repos *dataloader.Repos) http.Handler {
	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	srv := gqlhandler.NewDefaultServer(schema)
	srv.SetErrorPresenter(NewErrorPresenter(log))

	return dataloader.Middleware(repos)(srv)
}
