package grpc

// proto.go defines the gRPC server interface derived from
// vehiclefinance/quote/v1/quote.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from the generated package.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// QuoteServiceServer is the server API for QuoteService.
type QuoteServiceServer interface {
	CreatePaymentSchedule(context.Context, *CreatePaymentScheduleRequest) (*CreatePaymentScheduleResponse, error)
	ValidateQuote(context.Context, *ValidateQuoteRequest) (*ValidateQuoteResponse, error)
	GetQuoteTerms(context.Context, *GetQuoteTermsRequest) (*GetQuoteTermsResponse, error)
	mustEmbedUnimplementedQuoteServiceServer()
}

// UnimplementedQuoteServiceServer provides forward-compatible default implementations.
type UnimplementedQuoteServiceServer struct{}

func (UnimplementedQuoteServiceServer) CreatePaymentSchedule(context.Context, *CreatePaymentScheduleRequest) (*CreatePaymentScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePaymentSchedule not implemented")
}
func (UnimplementedQuoteServiceServer) ValidateQuote(context.Context, *ValidateQuoteRequest) (*ValidateQuoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateQuote not implemented")
}
func (UnimplementedQuoteServiceServer) GetQuoteTerms(context.Context, *GetQuoteTermsRequest) (*GetQuoteTermsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetQuoteTerms not implemented")
}
func (UnimplementedQuoteServiceServer) mustEmbedUnimplementedQuoteServiceServer() {}

// RegisterQuoteServiceServer registers the QuoteServiceServer with the gRPC server.
func RegisterQuoteServiceServer(s *grpclib.Server, srv QuoteServiceServer) {
	s.RegisterService(&_QuoteService_serviceDesc, srv)
}

var _QuoteService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "vehiclefinance.quote.v1.QuoteService",
	HandlerType: (*QuoteServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreatePaymentSchedule", Handler: _QuoteService_CreatePaymentSchedule_Handler},
		{MethodName: "ValidateQuote", Handler: _QuoteService_ValidateQuote_Handler},
		{MethodName: "GetQuoteTerms", Handler: _QuoteService_GetQuoteTerms_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _QuoteService_CreatePaymentSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(CreatePaymentScheduleRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(QuoteServiceServer).CreatePaymentSchedule(ctx, req)
}

func _QuoteService_ValidateQuote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ValidateQuoteRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(QuoteServiceServer).ValidateQuote(ctx, req)
}

func _QuoteService_GetQuoteTerms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetQuoteTermsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(QuoteServiceServer).GetQuoteTerms(ctx, req)
}
