package account

import (
	"google.golang.org/grpc"

	"github.com/gashapp/gash-backend/internal/app"
	pb "github.com/gashapp/gash-backend/internal/proto/account"
)

// Registrar ties the Account service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Account service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Account service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewAccountService(r.appCtx)
	pb.RegisterAccountServiceServer(s, service)
}
