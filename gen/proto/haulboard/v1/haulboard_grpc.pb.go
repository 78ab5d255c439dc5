// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: haulboard/v1/haulboard.proto

package haulboardv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	DriversService_CreateDriver_FullMethodName = "/haulboard.v1.DriversService/CreateDriver"
	DriversService_ListDrivers_FullMethodName  = "/haulboard.v1.DriversService/ListDrivers"
)

// DriversServiceClient is the client API for DriversService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DriversServiceClient interface {
	CreateDriver(ctx context.Context, in *CreateDriverRequest, opts ...grpc.CallOption) (*CreateDriverResponse, error)
	ListDrivers(ctx context.Context, in *ListDriversRequest, opts ...grpc.CallOption) (*ListDriversResponse, error)
}

type driversServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDriversServiceClient(cc grpc.ClientConnInterface) DriversServiceClient {
	return &driversServiceClient{cc}
}

func (c *driversServiceClient) CreateDriver(ctx context.Context, in *CreateDriverRequest, opts ...grpc.CallOption) (*CreateDriverResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateDriverResponse)
	err := c.cc.Invoke(ctx, DriversService_CreateDriver_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *driversServiceClient) ListDrivers(ctx context.Context, in *ListDriversRequest, opts ...grpc.CallOption) (*ListDriversResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDriversResponse)
	err := c.cc.Invoke(ctx, DriversService_ListDrivers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DriversServiceServer is the server API for DriversService service.
// All implementations must embed UnimplementedDriversServiceServer
// for forward compatibility.
type DriversServiceServer interface {
	CreateDriver(context.Context, *CreateDriverRequest) (*CreateDriverResponse, error)
	ListDrivers(context.Context, *ListDriversRequest) (*ListDriversResponse, error)
	mustEmbedUnimplementedDriversServiceServer()
}

// UnimplementedDriversServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDriversServiceServer struct{}

func (UnimplementedDriversServiceServer) CreateDriver(context.Context, *CreateDriverRequest) (*CreateDriverResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateDriver not implemented")
}
func (UnimplementedDriversServiceServer) ListDrivers(context.Context, *ListDriversRequest) (*ListDriversResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDrivers not implemented")
}
func (UnimplementedDriversServiceServer) mustEmbedUnimplementedDriversServiceServer() {}
func (UnimplementedDriversServiceServer) testEmbeddedByValue()                        {}

// UnsafeDriversServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DriversServiceServer will
// result in compilation errors.
type UnsafeDriversServiceServer interface {
	mustEmbedUnimplementedDriversServiceServer()
}

func RegisterDriversServiceServer(s grpc.ServiceRegistrar, srv DriversServiceServer) {
	// If the following call pancis, it indicates UnimplementedDriversServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DriversService_ServiceDesc, srv)
}

func _DriversService_CreateDriver_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateDriverRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DriversServiceServer).CreateDriver(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DriversService_CreateDriver_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DriversServiceServer).CreateDriver(ctx, req.(*CreateDriverRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DriversService_ListDrivers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDriversRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DriversServiceServer).ListDrivers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DriversService_ListDrivers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DriversServiceServer).ListDrivers(ctx, req.(*ListDriversRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DriversService_ServiceDesc is the grpc.ServiceDesc for DriversService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DriversService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "haulboard.v1.DriversService",
	HandlerType: (*DriversServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateDriver",
			Handler:    _DriversService_CreateDriver_Handler,
		},
		{
			MethodName: "ListDrivers",
			Handler:    _DriversService_ListDrivers_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "haulboard/v1/haulboard.proto",
}

const (
	DocumentsService_UploadDocument_FullMethodName  = "/haulboard.v1.DocumentsService/UploadDocument"
	DocumentsService_ListDocuments_FullMethodName   = "/haulboard.v1.DocumentsService/ListDocuments"
	DocumentsService_ExtractDocument_FullMethodName = "/haulboard.v1.DocumentsService/ExtractDocument"
	DocumentsService_GetExtraction_FullMethodName   = "/haulboard.v1.DocumentsService/GetExtraction"
	DocumentsService_ApplyToLoad_FullMethodName     = "/haulboard.v1.DocumentsService/ApplyToLoad"
	DocumentsService_AttachDocument_FullMethodName  = "/haulboard.v1.DocumentsService/AttachDocument"
)

// DocumentsServiceClient is the client API for DocumentsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DocumentsServiceClient interface {
	// UploadDocument stores the bytes and registers the document. Identical
	// bytes for the same driver deduplicate to the existing row.
	UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	// ExtractDocument runs OCR + field parsing. With async=true the work is
	// queued and the response carries only the accepted document id.
	ExtractDocument(ctx context.Context, in *ExtractDocumentRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error)
	GetExtraction(ctx context.Context, in *GetExtractionRequest, opts ...grpc.CallOption) (*GetExtractionResponse, error)
	// ApplyToLoad merges an extraction (plus caller overrides) into a load.
	ApplyToLoad(ctx context.Context, in *ApplyToLoadRequest, opts ...grpc.CallOption) (*ApplyToLoadResponse, error)
	// AttachDocument links an already-uploaded document to an existing load.
	AttachDocument(ctx context.Context, in *AttachDocumentRequest, opts ...grpc.CallOption) (*AttachDocumentResponse, error)
}

type documentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentsServiceClient(cc grpc.ClientConnInterface) DocumentsServiceClient {
	return &documentsServiceClient{cc}
}

func (c *documentsServiceClient) UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_UploadDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ExtractDocument(ctx context.Context, in *ExtractDocumentRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ExtractDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) GetExtraction(ctx context.Context, in *GetExtractionRequest, opts ...grpc.CallOption) (*GetExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetExtractionResponse)
	err := c.cc.Invoke(ctx, DocumentsService_GetExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ApplyToLoad(ctx context.Context, in *ApplyToLoadRequest, opts ...grpc.CallOption) (*ApplyToLoadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApplyToLoadResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ApplyToLoad_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) AttachDocument(ctx context.Context, in *AttachDocumentRequest, opts ...grpc.CallOption) (*AttachDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AttachDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_AttachDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentsServiceServer is the server API for DocumentsService service.
// All implementations must embed UnimplementedDocumentsServiceServer
// for forward compatibility.
type DocumentsServiceServer interface {
	// UploadDocument stores the bytes and registers the document. Identical
	// bytes for the same driver deduplicate to the existing row.
	UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	// ExtractDocument runs OCR + field parsing. With async=true the work is
	// queued and the response carries only the accepted document id.
	ExtractDocument(context.Context, *ExtractDocumentRequest) (*ExtractDocumentResponse, error)
	GetExtraction(context.Context, *GetExtractionRequest) (*GetExtractionResponse, error)
	// ApplyToLoad merges an extraction (plus caller overrides) into a load.
	ApplyToLoad(context.Context, *ApplyToLoadRequest) (*ApplyToLoadResponse, error)
	// AttachDocument links an already-uploaded document to an existing load.
	AttachDocument(context.Context, *AttachDocumentRequest) (*AttachDocumentResponse, error)
	mustEmbedUnimplementedDocumentsServiceServer()
}

// UnimplementedDocumentsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentsServiceServer struct{}

func (UnimplementedDocumentsServiceServer) UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedDocumentsServiceServer) ExtractDocument(context.Context, *ExtractDocumentRequest) (*ExtractDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) GetExtraction(context.Context, *GetExtractionRequest) (*GetExtractionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetExtraction not implemented")
}
func (UnimplementedDocumentsServiceServer) ApplyToLoad(context.Context, *ApplyToLoadRequest) (*ApplyToLoadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApplyToLoad not implemented")
}
func (UnimplementedDocumentsServiceServer) AttachDocument(context.Context, *AttachDocumentRequest) (*AttachDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AttachDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) mustEmbedUnimplementedDocumentsServiceServer() {}
func (UnimplementedDocumentsServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocumentsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentsServiceServer will
// result in compilation errors.
type UnsafeDocumentsServiceServer interface {
	mustEmbedUnimplementedDocumentsServiceServer()
}

func RegisterDocumentsServiceServer(s grpc.ServiceRegistrar, srv DocumentsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocumentsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentsService_ServiceDesc, srv)
}

func _DocumentsService_UploadDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).UploadDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_UploadDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).UploadDocument(ctx, req.(*UploadDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ExtractDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ExtractDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ExtractDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ExtractDocument(ctx, req.(*ExtractDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_GetExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).GetExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_GetExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).GetExtraction(ctx, req.(*GetExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ApplyToLoad_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyToLoadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ApplyToLoad(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ApplyToLoad_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ApplyToLoad(ctx, req.(*ApplyToLoadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_AttachDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttachDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).AttachDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_AttachDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).AttachDocument(ctx, req.(*AttachDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentsService_ServiceDesc is the grpc.ServiceDesc for DocumentsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "haulboard.v1.DocumentsService",
	HandlerType: (*DocumentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadDocument",
			Handler:    _DocumentsService_UploadDocument_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _DocumentsService_ListDocuments_Handler,
		},
		{
			MethodName: "ExtractDocument",
			Handler:    _DocumentsService_ExtractDocument_Handler,
		},
		{
			MethodName: "GetExtraction",
			Handler:    _DocumentsService_GetExtraction_Handler,
		},
		{
			MethodName: "ApplyToLoad",
			Handler:    _DocumentsService_ApplyToLoad_Handler,
		},
		{
			MethodName: "AttachDocument",
			Handler:    _DocumentsService_AttachDocument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "haulboard/v1/haulboard.proto",
}

const (
	LoadsService_GetLoad_FullMethodName          = "/haulboard.v1.LoadsService/GetLoad"
	LoadsService_ListLoads_FullMethodName        = "/haulboard.v1.LoadsService/ListLoads"
	LoadsService_UpdateLoadStatus_FullMethodName = "/haulboard.v1.LoadsService/UpdateLoadStatus"
	LoadsService_DeleteLoad_FullMethodName       = "/haulboard.v1.LoadsService/DeleteLoad"
)

// LoadsServiceClient is the client API for LoadsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type LoadsServiceClient interface {
	GetLoad(ctx context.Context, in *GetLoadRequest, opts ...grpc.CallOption) (*GetLoadResponse, error)
	ListLoads(ctx context.Context, in *ListLoadsRequest, opts ...grpc.CallOption) (*ListLoadsResponse, error)
	UpdateLoadStatus(ctx context.Context, in *UpdateLoadStatusRequest, opts ...grpc.CallOption) (*UpdateLoadStatusResponse, error)
	DeleteLoad(ctx context.Context, in *DeleteLoadRequest, opts ...grpc.CallOption) (*DeleteLoadResponse, error)
}

type loadsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLoadsServiceClient(cc grpc.ClientConnInterface) LoadsServiceClient {
	return &loadsServiceClient{cc}
}

func (c *loadsServiceClient) GetLoad(ctx context.Context, in *GetLoadRequest, opts ...grpc.CallOption) (*GetLoadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLoadResponse)
	err := c.cc.Invoke(ctx, LoadsService_GetLoad_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *loadsServiceClient) ListLoads(ctx context.Context, in *ListLoadsRequest, opts ...grpc.CallOption) (*ListLoadsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLoadsResponse)
	err := c.cc.Invoke(ctx, LoadsService_ListLoads_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *loadsServiceClient) UpdateLoadStatus(ctx context.Context, in *UpdateLoadStatusRequest, opts ...grpc.CallOption) (*UpdateLoadStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateLoadStatusResponse)
	err := c.cc.Invoke(ctx, LoadsService_UpdateLoadStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *loadsServiceClient) DeleteLoad(ctx context.Context, in *DeleteLoadRequest, opts ...grpc.CallOption) (*DeleteLoadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteLoadResponse)
	err := c.cc.Invoke(ctx, LoadsService_DeleteLoad_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadsServiceServer is the server API for LoadsService service.
// All implementations must embed UnimplementedLoadsServiceServer
// for forward compatibility.
type LoadsServiceServer interface {
	GetLoad(context.Context, *GetLoadRequest) (*GetLoadResponse, error)
	ListLoads(context.Context, *ListLoadsRequest) (*ListLoadsResponse, error)
	UpdateLoadStatus(context.Context, *UpdateLoadStatusRequest) (*UpdateLoadStatusResponse, error)
	DeleteLoad(context.Context, *DeleteLoadRequest) (*DeleteLoadResponse, error)
	mustEmbedUnimplementedLoadsServiceServer()
}

// UnimplementedLoadsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLoadsServiceServer struct{}

func (UnimplementedLoadsServiceServer) GetLoad(context.Context, *GetLoadRequest) (*GetLoadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoad not implemented")
}
func (UnimplementedLoadsServiceServer) ListLoads(context.Context, *ListLoadsRequest) (*ListLoadsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLoads not implemented")
}
func (UnimplementedLoadsServiceServer) UpdateLoadStatus(context.Context, *UpdateLoadStatusRequest) (*UpdateLoadStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateLoadStatus not implemented")
}
func (UnimplementedLoadsServiceServer) DeleteLoad(context.Context, *DeleteLoadRequest) (*DeleteLoadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteLoad not implemented")
}
func (UnimplementedLoadsServiceServer) mustEmbedUnimplementedLoadsServiceServer() {}
func (UnimplementedLoadsServiceServer) testEmbeddedByValue()                      {}

// UnsafeLoadsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LoadsServiceServer will
// result in compilation errors.
type UnsafeLoadsServiceServer interface {
	mustEmbedUnimplementedLoadsServiceServer()
}

func RegisterLoadsServiceServer(s grpc.ServiceRegistrar, srv LoadsServiceServer) {
	// If the following call pancis, it indicates UnimplementedLoadsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LoadsService_ServiceDesc, srv)
}

func _LoadsService_GetLoad_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoadsServiceServer).GetLoad(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoadsService_GetLoad_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoadsServiceServer).GetLoad(ctx, req.(*GetLoadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LoadsService_ListLoads_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLoadsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoadsServiceServer).ListLoads(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoadsService_ListLoads_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoadsServiceServer).ListLoads(ctx, req.(*ListLoadsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LoadsService_UpdateLoadStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateLoadStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoadsServiceServer).UpdateLoadStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoadsService_UpdateLoadStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoadsServiceServer).UpdateLoadStatus(ctx, req.(*UpdateLoadStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LoadsService_DeleteLoad_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteLoadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoadsServiceServer).DeleteLoad(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoadsService_DeleteLoad_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoadsServiceServer).DeleteLoad(ctx, req.(*DeleteLoadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LoadsService_ServiceDesc is the grpc.ServiceDesc for LoadsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LoadsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "haulboard.v1.LoadsService",
	HandlerType: (*LoadsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetLoad",
			Handler:    _LoadsService_GetLoad_Handler,
		},
		{
			MethodName: "ListLoads",
			Handler:    _LoadsService_ListLoads_Handler,
		},
		{
			MethodName: "UpdateLoadStatus",
			Handler:    _LoadsService_UpdateLoadStatus_Handler,
		},
		{
			MethodName: "DeleteLoad",
			Handler:    _LoadsService_DeleteLoad_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "haulboard/v1/haulboard.proto",
}

const (
	ExpensesService_AddExpense_FullMethodName    = "/haulboard.v1.ExpensesService/AddExpense"
	ExpensesService_ListExpenses_FullMethodName  = "/haulboard.v1.ExpensesService/ListExpenses"
	ExpensesService_DeleteExpense_FullMethodName = "/haulboard.v1.ExpensesService/DeleteExpense"
)

// ExpensesServiceClient is the client API for ExpensesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExpensesServiceClient interface {
	AddExpense(ctx context.Context, in *AddExpenseRequest, opts ...grpc.CallOption) (*AddExpenseResponse, error)
	ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error)
	DeleteExpense(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*DeleteExpenseResponse, error)
}

type expensesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExpensesServiceClient(cc grpc.ClientConnInterface) ExpensesServiceClient {
	return &expensesServiceClient{cc}
}

func (c *expensesServiceClient) AddExpense(ctx context.Context, in *AddExpenseRequest, opts ...grpc.CallOption) (*AddExpenseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddExpenseResponse)
	err := c.cc.Invoke(ctx, ExpensesService_AddExpense_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExpensesResponse)
	err := c.cc.Invoke(ctx, ExpensesService_ListExpenses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expensesServiceClient) DeleteExpense(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*DeleteExpenseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteExpenseResponse)
	err := c.cc.Invoke(ctx, ExpensesService_DeleteExpense_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExpensesServiceServer is the server API for ExpensesService service.
// All implementations must embed UnimplementedExpensesServiceServer
// for forward compatibility.
type ExpensesServiceServer interface {
	AddExpense(context.Context, *AddExpenseRequest) (*AddExpenseResponse, error)
	ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error)
	DeleteExpense(context.Context, *DeleteExpenseRequest) (*DeleteExpenseResponse, error)
	mustEmbedUnimplementedExpensesServiceServer()
}

// UnimplementedExpensesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExpensesServiceServer struct{}

func (UnimplementedExpensesServiceServer) AddExpense(context.Context, *AddExpenseRequest) (*AddExpenseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddExpense not implemented")
}
func (UnimplementedExpensesServiceServer) ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExpenses not implemented")
}
func (UnimplementedExpensesServiceServer) DeleteExpense(context.Context, *DeleteExpenseRequest) (*DeleteExpenseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteExpense not implemented")
}
func (UnimplementedExpensesServiceServer) mustEmbedUnimplementedExpensesServiceServer() {}
func (UnimplementedExpensesServiceServer) testEmbeddedByValue()                         {}

// UnsafeExpensesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExpensesServiceServer will
// result in compilation errors.
type UnsafeExpensesServiceServer interface {
	mustEmbedUnimplementedExpensesServiceServer()
}

func RegisterExpensesServiceServer(s grpc.ServiceRegistrar, srv ExpensesServiceServer) {
	// If the following call pancis, it indicates UnimplementedExpensesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExpensesService_ServiceDesc, srv)
}

func _ExpensesService_AddExpense_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddExpenseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).AddExpense(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_AddExpense_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).AddExpense(ctx, req.(*AddExpenseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_ListExpenses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExpensesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).ListExpenses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_ListExpenses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).ListExpenses(ctx, req.(*ListExpensesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpensesService_DeleteExpense_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteExpenseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpensesServiceServer).DeleteExpense(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpensesService_DeleteExpense_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExpensesServiceServer).DeleteExpense(ctx, req.(*DeleteExpenseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExpensesService_ServiceDesc is the grpc.ServiceDesc for ExpensesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExpensesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "haulboard.v1.ExpensesService",
	HandlerType: (*ExpensesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddExpense",
			Handler:    _ExpensesService_AddExpense_Handler,
		},
		{
			MethodName: "ListExpenses",
			Handler:    _ExpensesService_ListExpenses_Handler,
		},
		{
			MethodName: "DeleteExpense",
			Handler:    _ExpensesService_DeleteExpense_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "haulboard/v1/haulboard.proto",
}

const (
	ReportsService_WeeklyReport_FullMethodName = "/haulboard.v1.ReportsService/WeeklyReport"
	ReportsService_ExportLoads_FullMethodName  = "/haulboard.v1.ReportsService/ExportLoads"
)

// ReportsServiceClient is the client API for ReportsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ReportsServiceClient interface {
	WeeklyReport(ctx context.Context, in *WeeklyReportRequest, opts ...grpc.CallOption) (*WeeklyReportResponse, error)
	ExportLoads(ctx context.Context, in *ExportLoadsRequest, opts ...grpc.CallOption) (*ExportLoadsResponse, error)
}

type reportsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReportsServiceClient(cc grpc.ClientConnInterface) ReportsServiceClient {
	return &reportsServiceClient{cc}
}

func (c *reportsServiceClient) WeeklyReport(ctx context.Context, in *WeeklyReportRequest, opts ...grpc.CallOption) (*WeeklyReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WeeklyReportResponse)
	err := c.cc.Invoke(ctx, ReportsService_WeeklyReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reportsServiceClient) ExportLoads(ctx context.Context, in *ExportLoadsRequest, opts ...grpc.CallOption) (*ExportLoadsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportLoadsResponse)
	err := c.cc.Invoke(ctx, ReportsService_ExportLoads_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReportsServiceServer is the server API for ReportsService service.
// All implementations must embed UnimplementedReportsServiceServer
// for forward compatibility.
type ReportsServiceServer interface {
	WeeklyReport(context.Context, *WeeklyReportRequest) (*WeeklyReportResponse, error)
	ExportLoads(context.Context, *ExportLoadsRequest) (*ExportLoadsResponse, error)
	mustEmbedUnimplementedReportsServiceServer()
}

// UnimplementedReportsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReportsServiceServer struct{}

func (UnimplementedReportsServiceServer) WeeklyReport(context.Context, *WeeklyReportRequest) (*WeeklyReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method WeeklyReport not implemented")
}
func (UnimplementedReportsServiceServer) ExportLoads(context.Context, *ExportLoadsRequest) (*ExportLoadsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportLoads not implemented")
}
func (UnimplementedReportsServiceServer) mustEmbedUnimplementedReportsServiceServer() {}
func (UnimplementedReportsServiceServer) testEmbeddedByValue()                        {}

// UnsafeReportsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReportsServiceServer will
// result in compilation errors.
type UnsafeReportsServiceServer interface {
	mustEmbedUnimplementedReportsServiceServer()
}

func RegisterReportsServiceServer(s grpc.ServiceRegistrar, srv ReportsServiceServer) {
	// If the following call pancis, it indicates UnimplementedReportsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReportsService_ServiceDesc, srv)
}

func _ReportsService_WeeklyReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WeeklyReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).WeeklyReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_WeeklyReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).WeeklyReport(ctx, req.(*WeeklyReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReportsService_ExportLoads_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportLoadsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportsServiceServer).ExportLoads(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReportsService_ExportLoads_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReportsServiceServer).ExportLoads(ctx, req.(*ExportLoadsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReportsService_ServiceDesc is the grpc.ServiceDesc for ReportsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReportsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "haulboard.v1.ReportsService",
	HandlerType: (*ReportsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "WeeklyReport",
			Handler:    _ReportsService_WeeklyReport_Handler,
		},
		{
			MethodName: "ExportLoads",
			Handler:    _ReportsService_ExportLoads_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "haulboard/v1/haulboard.proto",
}
