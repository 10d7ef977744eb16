// Package rpcserver exposes the evaluation core over gRPC: Normalize and
// Equivalent as unary RPCs taking/returning google.protobuf.Struct. It plays
// the role funvibe-funxy's builtins_grpc.go plays for grpcServer/
// grpcRegister/grpcServe — a hand-built grpc.ServiceDesc registered onto a
// *grpc.Server, rather than stubs generated by protoc (there is no .proto
// file to compile vellum's wire shape from; the messages are the two
// well-known Struct/Value types, so the standard proto codec handles them
// without generated code).
package rpcserver

import (
	"context"
	"fmt"
	"log"
	"net"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vellum-lang/vellum/internal/ast"
	"github.com/vellum-lang/vellum/internal/cache"
	"github.com/vellum-lang/vellum/internal/vellum"
	"github.com/vellum-lang/vellum/internal/wire"
)

// ServiceName is the gRPC service name vellum registers under.
const ServiceName = "vellum.Evaluator"

// Server implements the Evaluator service: Normalize and Equivalent.
// Cache is optional — when set, Normalize consults it before evaluating and
// stores its result, the same cache-then-compute shape as funxy's own
// ext.CachedBuild.
type Server struct {
	Cache *cache.Cache
}

// Normalize reduces the Expr carried in req (under key "expr") to
// β-normal form and returns it the same way.
func (s *Server) Normalize(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	reqID := uuid.NewString()
	exprField, ok := req.GetFields()["expr"]
	if !ok {
		return nil, fmt.Errorf("rpcserver[%s]: Normalize request missing \"expr\" field", reqID)
	}
	e, err := wire.StructValueToExpr(exprField)
	if err != nil {
		return nil, fmt.Errorf("rpcserver[%s]: decoding expr: %w", reqID, err)
	}
	log.Printf("rpcserver[%s]: Normalize", reqID)

	compute := func() (ast.Expr, error) { return vellum.Normalize(e) }

	var out ast.Expr
	if s.Cache != nil {
		key, err := cache.Key(e)
		if err != nil {
			return nil, fmt.Errorf("rpcserver[%s]: hashing cache key: %w", reqID, err)
		}
		out, err = s.Cache.GetOrCompute(ctx, key, compute)
		if err != nil {
			return nil, fmt.Errorf("rpcserver[%s]: %w", reqID, err)
		}
	} else {
		out, err = compute()
		if err != nil {
			return nil, fmt.Errorf("rpcserver[%s]: %w", reqID, err)
		}
	}

	outVal, err := wire.ExprToStructValue(out)
	if err != nil {
		return nil, fmt.Errorf("rpcserver[%s]: encoding result: %w", reqID, err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{"expr": outVal}}, nil
}

// Equivalent decides whether req's "a" and "b" Expr fields are
// judgmentally equal and returns the verdict under "equal".
func (s *Server) Equivalent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	reqID := uuid.NewString()
	af, ok := req.GetFields()["a"]
	if !ok {
		return nil, fmt.Errorf("rpcserver[%s]: Equivalent request missing \"a\" field", reqID)
	}
	bf, ok := req.GetFields()["b"]
	if !ok {
		return nil, fmt.Errorf("rpcserver[%s]: Equivalent request missing \"b\" field", reqID)
	}
	a, err := wire.StructValueToExpr(af)
	if err != nil {
		return nil, fmt.Errorf("rpcserver[%s]: decoding a: %w", reqID, err)
	}
	b, err := wire.StructValueToExpr(bf)
	if err != nil {
		return nil, fmt.Errorf("rpcserver[%s]: decoding b: %w", reqID, err)
	}
	log.Printf("rpcserver[%s]: Equivalent", reqID)

	equal, err := vellum.JudgmentallyEqual(a, b)
	if err != nil {
		return nil, fmt.Errorf("rpcserver[%s]: %w", reqID, err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"equal": structpb.NewBoolValue(equal),
	}}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Normalize",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				in := new(structpb.Struct)
				if err := dec(in); err != nil {
					return nil, err
				}
				s := srv.(*Server)
				if interceptor == nil {
					return s.Normalize(ctx, in)
				}
				info := &grpc.UnaryServerInfo{Server: s, FullMethod: "/" + ServiceName + "/Normalize"}
				handler := func(ctx context.Context, req any) (any, error) {
					return s.Normalize(ctx, req.(*structpb.Struct))
				}
				return interceptor(ctx, in, info, handler)
			},
		},
		{
			MethodName: "Equivalent",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				in := new(structpb.Struct)
				if err := dec(in); err != nil {
					return nil, err
				}
				s := srv.(*Server)
				if interceptor == nil {
					return s.Equivalent(ctx, in)
				}
				info := &grpc.UnaryServerInfo{Server: s, FullMethod: "/" + ServiceName + "/Equivalent"}
				handler := func(ctx context.Context, req any) (any, error) {
					return s.Equivalent(ctx, req.(*structpb.Struct))
				}
				return interceptor(ctx, in, info, handler)
			},
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vellum/evaluator.proto",
}

// Register attaches impl to grpcServer under the Evaluator service
// descriptor, the same shape as funxy's builtinGrpcRegister constructing a
// grpc.ServiceDesc by hand and calling RegisterService.
func Register(grpcServer *grpc.Server, impl *Server) {
	grpcServer.RegisterService(&serviceDesc, impl)
}

// Serve starts a gRPC server exposing impl on addr and blocks until the
// listener errors or the server is stopped — funxy's builtinGrpcServe,
// generalized from a scripted one-shot call to this package's own binary
// entry point (cmd/vellumd).
func Serve(addr string, impl *Server) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("rpcserver: listen %s: %w", addr, err)
	}
	grpcServer := grpc.NewServer()
	Register(grpcServer, impl)
	return grpcServer.Serve(lis)
}
