package evaluator

import (
	"context"

	"google.golang.org/grpc"
)

// serviceName and method paths mirror what protoc-gen-go-grpc would emit
// for a "blokus.Evaluator" service with Predict/Save/Check unary RPCs.
const (
	serviceName   = "blokus.Evaluator"
	methodPredict = "/" + serviceName + "/Predict"
	methodSave    = "/" + serviceName + "/Save"
	methodCheck   = "/" + serviceName + "/Check"
)

type empty struct{}

// serviceDesc wires the Evaluator interface into grpc's server dispatch
// table, the way generated _grpc.pb.go code registers a service.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*Evaluator)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Predict",
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
				var req StateRepresentation
				if err := dec(&req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(Evaluator).Predict(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodPredict}
				handler := func(ctx context.Context, req interface{}) (interface{}, error) {
					return srv.(Evaluator).Predict(ctx, req.(StateRepresentation))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "Save",
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
				var req TrainingGame
				if err := dec(&req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return empty{}, srv.(Evaluator).Save(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSave}
				handler := func(ctx context.Context, req interface{}) (interface{}, error) {
					return empty{}, srv.(Evaluator).Save(ctx, req.(TrainingGame))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "Check",
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
				var req empty
				if err := dec(&req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(Evaluator).Check(ctx)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodCheck}
				handler := func(ctx context.Context, req interface{}) (interface{}, error) {
					return srv.(Evaluator).Check(ctx)
				}
				return interceptor(ctx, req, info, handler)
			},
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "blokus/evaluator.proto",
}

// RegisterEvaluatorServer registers srv's Predict/Save/Check methods as a
// blokus.Evaluator gRPC service.
func RegisterEvaluatorServer(s grpc.ServiceRegistrar, srv Evaluator) {
	s.RegisterService(&serviceDesc, srv)
}
