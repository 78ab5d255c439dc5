// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: haulboard/v1/haulboard.proto

package haulboardv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Driver struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,4,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Driver) Reset() {
	*x = Driver{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Driver) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Driver) ProtoMessage() {}

func (x *Driver) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Driver.ProtoReflect.Descriptor instead.
func (*Driver) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{0}
}

func (x *Driver) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Driver) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Driver) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Driver) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateDriverRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDriverRequest) Reset() {
	*x = CreateDriverRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDriverRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDriverRequest) ProtoMessage() {}

func (x *CreateDriverRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDriverRequest.ProtoReflect.Descriptor instead.
func (*CreateDriverRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{1}
}

func (x *CreateDriverRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateDriverResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Driver        *Driver                `protobuf:"bytes,1,opt,name=driver,proto3" json:"driver,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDriverResponse) Reset() {
	*x = CreateDriverResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDriverResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDriverResponse) ProtoMessage() {}

func (x *CreateDriverResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDriverResponse.ProtoReflect.Descriptor instead.
func (*CreateDriverResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{2}
}

func (x *CreateDriverResponse) GetDriver() *Driver {
	if x != nil {
		return x.Driver
	}
	return nil
}

type ListDriversRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDriversRequest) Reset() {
	*x = ListDriversRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDriversRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDriversRequest) ProtoMessage() {}

func (x *ListDriversRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDriversRequest.ProtoReflect.Descriptor instead.
func (*ListDriversRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{3}
}

type ListDriversResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Drivers       []*Driver              `protobuf:"bytes,1,rep,name=drivers,proto3" json:"drivers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDriversResponse) Reset() {
	*x = ListDriversResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDriversResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDriversResponse) ProtoMessage() {}

func (x *ListDriversResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDriversResponse.ProtoReflect.Descriptor instead.
func (*ListDriversResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{4}
}

func (x *ListDriversResponse) GetDrivers() []*Driver {
	if x != nil {
		return x.Drivers
	}
	return nil
}

type Document struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DriverId       string                 `protobuf:"bytes,2,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	LoadId         string                 `protobuf:"bytes,3,opt,name=load_id,json=loadId,proto3" json:"load_id,omitempty"`    // empty until attached
	DocType        string                 `protobuf:"bytes,4,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"` // rate | bol | pod | other
	Filename       string                 `protobuf:"bytes,5,opt,name=filename,proto3" json:"filename,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,7,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	MimeType       string                 `protobuf:"bytes,8,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	FileSize       int64                  `protobuf:"varint,9,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	Label          string                 `protobuf:"bytes,10,opt,name=label,proto3" json:"label,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,11,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{5}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *Document) GetLoadId() string {
	if x != nil {
		return x.LoadId
	}
	return ""
}

func (x *Document) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Document) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *Document) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DriverId      string                 `protobuf:"bytes,1,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	MimeType      string                 `protobuf:"bytes,3,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	DocType       string                 `protobuf:"bytes,4,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{6}
}

func (x *UploadDocumentRequest) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *UploadDocumentRequest) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Deduplicated  bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{7}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *UploadDocumentResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DriverId      string                 `protobuf:"bytes,1,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsRequest) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{9}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type ExtractDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Async         bool                   `protobuf:"varint,2,opt,name=async,proto3" json:"async,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentRequest) Reset() {
	*x = ExtractDocumentRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentRequest) ProtoMessage() {}

func (x *ExtractDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExtractDocumentRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{10}
}

func (x *ExtractDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractDocumentRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type ExtractDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Queued        bool                   `protobuf:"varint,2,opt,name=queued,proto3" json:"queued,omitempty"`
	Job           *ExtractJob            `protobuf:"bytes,3,opt,name=job,proto3" json:"job,omitempty"` // set for synchronous runs
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentResponse) Reset() {
	*x = ExtractDocumentResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentResponse) ProtoMessage() {}

func (x *ExtractDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExtractDocumentResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{11}
}

func (x *ExtractDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractDocumentResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

func (x *ExtractDocumentResponse) GetJob() *ExtractJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ExtractJob struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId     string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	LoadId         string                 `protobuf:"bytes,3,opt,name=load_id,json=loadId,proto3" json:"load_id,omitempty"`
	Status         string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"` // QUEUED | RUNNING | OCR_OK | PARSE_OK | FAILED
	OcrMethod      string                 `protobuf:"bytes,5,opt,name=ocr_method,json=ocrMethod,proto3" json:"ocr_method,omitempty"`
	Pages          int32                  `protobuf:"varint,6,opt,name=pages,proto3" json:"pages,omitempty"`
	Confidence     float32                `protobuf:"fixed32,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	NeedsReview    bool                   `protobuf:"varint,8,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ExtractedJson  string                 `protobuf:"bytes,9,opt,name=extracted_json,json=extractedJson,proto3" json:"extracted_json,omitempty"` // typed fields record
	FieldSpansJson string                 `protobuf:"bytes,10,opt,name=field_spans_json,json=fieldSpansJson,proto3" json:"field_spans_json,omitempty"`
	SuggestedLabel string                 `protobuf:"bytes,11,opt,name=suggested_label,json=suggestedLabel,proto3" json:"suggested_label,omitempty"`
	ErrorMessage   string                 `protobuf:"bytes,12,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	StartedAt      string                 `protobuf:"bytes,13,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt     string                 `protobuf:"bytes,14,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExtractJob) Reset() {
	*x = ExtractJob{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractJob) ProtoMessage() {}

func (x *ExtractJob) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractJob.ProtoReflect.Descriptor instead.
func (*ExtractJob) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{12}
}

func (x *ExtractJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractJob) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractJob) GetLoadId() string {
	if x != nil {
		return x.LoadId
	}
	return ""
}

func (x *ExtractJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractJob) GetOcrMethod() string {
	if x != nil {
		return x.OcrMethod
	}
	return ""
}

func (x *ExtractJob) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *ExtractJob) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractJob) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ExtractJob) GetExtractedJson() string {
	if x != nil {
		return x.ExtractedJson
	}
	return ""
}

func (x *ExtractJob) GetFieldSpansJson() string {
	if x != nil {
		return x.FieldSpansJson
	}
	return ""
}

func (x *ExtractJob) GetSuggestedLabel() string {
	if x != nil {
		return x.SuggestedLabel
	}
	return ""
}

func (x *ExtractJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExtractJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ExtractJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionRequest) Reset() {
	*x = GetExtractionRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionRequest) ProtoMessage() {}

func (x *GetExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionRequest.ProtoReflect.Descriptor instead.
func (*GetExtractionRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{13}
}

func (x *GetExtractionRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ExtractJob            `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionResponse) Reset() {
	*x = GetExtractionResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionResponse) ProtoMessage() {}

func (x *GetExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionResponse.ProtoReflect.Descriptor instead.
func (*GetExtractionResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{14}
}

func (x *GetExtractionResponse) GetJob() *ExtractJob {
	if x != nil {
		return x.Job
	}
	return nil
}

// LoadFieldOverrides carries user corrections applied on top of the
// extracted fields before the load upsert. Empty strings mean "no override".
type LoadFieldOverrides struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GrossPay      string                 `protobuf:"bytes,1,opt,name=gross_pay,json=grossPay,proto3" json:"gross_pay,omitempty"` // decimal string
	Miles         string                 `protobuf:"bytes,2,opt,name=miles,proto3" json:"miles,omitempty"`
	PickupDate    string                 `protobuf:"bytes,3,opt,name=pickup_date,json=pickupDate,proto3" json:"pickup_date,omitempty"` // YYYY-MM-DD
	DeliveryDate  string                 `protobuf:"bytes,4,opt,name=delivery_date,json=deliveryDate,proto3" json:"delivery_date,omitempty"`
	Origin        string                 `protobuf:"bytes,5,opt,name=origin,proto3" json:"origin,omitempty"`
	Destination   string                 `protobuf:"bytes,6,opt,name=destination,proto3" json:"destination,omitempty"`
	PickupState   string                 `protobuf:"bytes,7,opt,name=pickup_state,json=pickupState,proto3" json:"pickup_state,omitempty"`
	DropState     string                 `protobuf:"bytes,8,opt,name=drop_state,json=dropState,proto3" json:"drop_state,omitempty"`
	Status        string                 `protobuf:"bytes,9,opt,name=status,proto3" json:"status,omitempty"`
	Label         string                 `protobuf:"bytes,10,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadFieldOverrides) Reset() {
	*x = LoadFieldOverrides{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadFieldOverrides) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadFieldOverrides) ProtoMessage() {}

func (x *LoadFieldOverrides) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadFieldOverrides.ProtoReflect.Descriptor instead.
func (*LoadFieldOverrides) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{15}
}

func (x *LoadFieldOverrides) GetGrossPay() string {
	if x != nil {
		return x.GrossPay
	}
	return ""
}

func (x *LoadFieldOverrides) GetMiles() string {
	if x != nil {
		return x.Miles
	}
	return ""
}

func (x *LoadFieldOverrides) GetPickupDate() string {
	if x != nil {
		return x.PickupDate
	}
	return ""
}

func (x *LoadFieldOverrides) GetDeliveryDate() string {
	if x != nil {
		return x.DeliveryDate
	}
	return ""
}

func (x *LoadFieldOverrides) GetOrigin() string {
	if x != nil {
		return x.Origin
	}
	return ""
}

func (x *LoadFieldOverrides) GetDestination() string {
	if x != nil {
		return x.Destination
	}
	return ""
}

func (x *LoadFieldOverrides) GetPickupState() string {
	if x != nil {
		return x.PickupState
	}
	return ""
}

func (x *LoadFieldOverrides) GetDropState() string {
	if x != nil {
		return x.DropState
	}
	return ""
}

func (x *LoadFieldOverrides) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *LoadFieldOverrides) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

type ApplyToLoadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Overrides     *LoadFieldOverrides    `protobuf:"bytes,2,opt,name=overrides,proto3" json:"overrides,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyToLoadRequest) Reset() {
	*x = ApplyToLoadRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyToLoadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyToLoadRequest) ProtoMessage() {}

func (x *ApplyToLoadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyToLoadRequest.ProtoReflect.Descriptor instead.
func (*ApplyToLoadRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{16}
}

func (x *ApplyToLoadRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ApplyToLoadRequest) GetOverrides() *LoadFieldOverrides {
	if x != nil {
		return x.Overrides
	}
	return nil
}

type ApplyToLoadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Load          *Load                  `protobuf:"bytes,1,opt,name=load,proto3" json:"load,omitempty"`
	Merged        bool                   `protobuf:"varint,2,opt,name=merged,proto3" json:"merged,omitempty"` // true when an existing load was updated
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyToLoadResponse) Reset() {
	*x = ApplyToLoadResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyToLoadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyToLoadResponse) ProtoMessage() {}

func (x *ApplyToLoadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyToLoadResponse.ProtoReflect.Descriptor instead.
func (*ApplyToLoadResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{17}
}

func (x *ApplyToLoadResponse) GetLoad() *Load {
	if x != nil {
		return x.Load
	}
	return nil
}

func (x *ApplyToLoadResponse) GetMerged() bool {
	if x != nil {
		return x.Merged
	}
	return false
}

type AttachDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	LoadId        string                 `protobuf:"bytes,2,opt,name=load_id,json=loadId,proto3" json:"load_id,omitempty"`
	Label         string                 `protobuf:"bytes,3,opt,name=label,proto3" json:"label,omitempty"` // optional display label for the document
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachDocumentRequest) Reset() {
	*x = AttachDocumentRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachDocumentRequest) ProtoMessage() {}

func (x *AttachDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachDocumentRequest.ProtoReflect.Descriptor instead.
func (*AttachDocumentRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{18}
}

func (x *AttachDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *AttachDocumentRequest) GetLoadId() string {
	if x != nil {
		return x.LoadId
	}
	return ""
}

func (x *AttachDocumentRequest) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

type AttachDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachDocumentResponse) Reset() {
	*x = AttachDocumentResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachDocumentResponse) ProtoMessage() {}

func (x *AttachDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachDocumentResponse.ProtoReflect.Descriptor instead.
func (*AttachDocumentResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{19}
}

func (x *AttachDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type Load struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DriverId      string                 `protobuf:"bytes,2,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	Label         string                 `protobuf:"bytes,3,opt,name=label,proto3" json:"label,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	GrossPay      string                 `protobuf:"bytes,5,opt,name=gross_pay,json=grossPay,proto3" json:"gross_pay,omitempty"` // decimal string, empty when unknown
	Miles         int32                  `protobuf:"varint,6,opt,name=miles,proto3" json:"miles,omitempty"`                      // 0 when unknown
	PickupDate    string                 `protobuf:"bytes,7,opt,name=pickup_date,json=pickupDate,proto3" json:"pickup_date,omitempty"`
	DeliveryDate  string                 `protobuf:"bytes,8,opt,name=delivery_date,json=deliveryDate,proto3" json:"delivery_date,omitempty"`
	Origin        string                 `protobuf:"bytes,9,opt,name=origin,proto3" json:"origin,omitempty"`
	Destination   string                 `protobuf:"bytes,10,opt,name=destination,proto3" json:"destination,omitempty"`
	PickupState   string                 `protobuf:"bytes,11,opt,name=pickup_state,json=pickupState,proto3" json:"pickup_state,omitempty"`
	DropState     string                 `protobuf:"bytes,12,opt,name=drop_state,json=dropState,proto3" json:"drop_state,omitempty"`
	BolNumber     string                 `protobuf:"bytes,13,opt,name=bol_number,json=bolNumber,proto3" json:"bol_number,omitempty"`
	NetProfit     string                 `protobuf:"bytes,14,opt,name=net_profit,json=netProfit,proto3" json:"net_profit,omitempty"` // decimal string, gross minus attached expenses
	CreatedAt     string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Load) Reset() {
	*x = Load{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Load) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Load) ProtoMessage() {}

func (x *Load) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Load.ProtoReflect.Descriptor instead.
func (*Load) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{20}
}

func (x *Load) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Load) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *Load) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *Load) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Load) GetGrossPay() string {
	if x != nil {
		return x.GrossPay
	}
	return ""
}

func (x *Load) GetMiles() int32 {
	if x != nil {
		return x.Miles
	}
	return 0
}

func (x *Load) GetPickupDate() string {
	if x != nil {
		return x.PickupDate
	}
	return ""
}

func (x *Load) GetDeliveryDate() string {
	if x != nil {
		return x.DeliveryDate
	}
	return ""
}

func (x *Load) GetOrigin() string {
	if x != nil {
		return x.Origin
	}
	return ""
}

func (x *Load) GetDestination() string {
	if x != nil {
		return x.Destination
	}
	return ""
}

func (x *Load) GetPickupState() string {
	if x != nil {
		return x.PickupState
	}
	return ""
}

func (x *Load) GetDropState() string {
	if x != nil {
		return x.DropState
	}
	return ""
}

func (x *Load) GetBolNumber() string {
	if x != nil {
		return x.BolNumber
	}
	return ""
}

func (x *Load) GetNetProfit() string {
	if x != nil {
		return x.NetProfit
	}
	return ""
}

func (x *Load) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Load) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetLoadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LoadId        string                 `protobuf:"bytes,1,opt,name=load_id,json=loadId,proto3" json:"load_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLoadRequest) Reset() {
	*x = GetLoadRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLoadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLoadRequest) ProtoMessage() {}

func (x *GetLoadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLoadRequest.ProtoReflect.Descriptor instead.
func (*GetLoadRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{21}
}

func (x *GetLoadRequest) GetLoadId() string {
	if x != nil {
		return x.LoadId
	}
	return ""
}

type GetLoadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Load          *Load                  `protobuf:"bytes,1,opt,name=load,proto3" json:"load,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLoadResponse) Reset() {
	*x = GetLoadResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLoadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLoadResponse) ProtoMessage() {}

func (x *GetLoadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLoadResponse.ProtoReflect.Descriptor instead.
func (*GetLoadResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{22}
}

func (x *GetLoadResponse) GetLoad() *Load {
	if x != nil {
		return x.Load
	}
	return nil
}

type ListLoadsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DriverId      string                 `protobuf:"bytes,1,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`                     // optional
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // optional, pickup date window
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLoadsRequest) Reset() {
	*x = ListLoadsRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLoadsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLoadsRequest) ProtoMessage() {}

func (x *ListLoadsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLoadsRequest.ProtoReflect.Descriptor instead.
func (*ListLoadsRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{23}
}

func (x *ListLoadsRequest) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *ListLoadsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListLoadsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListLoadsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListLoadsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Loads         []*Load                `protobuf:"bytes,1,rep,name=loads,proto3" json:"loads,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLoadsResponse) Reset() {
	*x = ListLoadsResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLoadsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLoadsResponse) ProtoMessage() {}

func (x *ListLoadsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLoadsResponse.ProtoReflect.Descriptor instead.
func (*ListLoadsResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{24}
}

func (x *ListLoadsResponse) GetLoads() []*Load {
	if x != nil {
		return x.Loads
	}
	return nil
}

type UpdateLoadStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LoadId        string                 `protobuf:"bytes,1,opt,name=load_id,json=loadId,proto3" json:"load_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateLoadStatusRequest) Reset() {
	*x = UpdateLoadStatusRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateLoadStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateLoadStatusRequest) ProtoMessage() {}

func (x *UpdateLoadStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateLoadStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateLoadStatusRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{25}
}

func (x *UpdateLoadStatusRequest) GetLoadId() string {
	if x != nil {
		return x.LoadId
	}
	return ""
}

func (x *UpdateLoadStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UpdateLoadStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Load          *Load                  `protobuf:"bytes,1,opt,name=load,proto3" json:"load,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateLoadStatusResponse) Reset() {
	*x = UpdateLoadStatusResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateLoadStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateLoadStatusResponse) ProtoMessage() {}

func (x *UpdateLoadStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateLoadStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateLoadStatusResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{26}
}

func (x *UpdateLoadStatusResponse) GetLoad() *Load {
	if x != nil {
		return x.Load
	}
	return nil
}

type DeleteLoadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LoadId        string                 `protobuf:"bytes,1,opt,name=load_id,json=loadId,proto3" json:"load_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLoadRequest) Reset() {
	*x = DeleteLoadRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLoadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLoadRequest) ProtoMessage() {}

func (x *DeleteLoadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLoadRequest.ProtoReflect.Descriptor instead.
func (*DeleteLoadRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{27}
}

func (x *DeleteLoadRequest) GetLoadId() string {
	if x != nil {
		return x.LoadId
	}
	return ""
}

type DeleteLoadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLoadResponse) Reset() {
	*x = DeleteLoadResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLoadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLoadResponse) ProtoMessage() {}

func (x *DeleteLoadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLoadResponse.ProtoReflect.Descriptor instead.
func (*DeleteLoadResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{28}
}

type Expense struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DriverId      string                 `protobuf:"bytes,2,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	LoadId        string                 `protobuf:"bytes,3,opt,name=load_id,json=loadId,proto3" json:"load_id,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Amount        string                 `protobuf:"bytes,5,opt,name=amount,proto3" json:"amount,omitempty"`                           // decimal string
	IncurredAt    string                 `protobuf:"bytes,6,opt,name=incurred_at,json=incurredAt,proto3" json:"incurred_at,omitempty"` // YYYY-MM-DD
	Note          string                 `protobuf:"bytes,7,opt,name=note,proto3" json:"note,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Expense) Reset() {
	*x = Expense{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Expense) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Expense) ProtoMessage() {}

func (x *Expense) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Expense.ProtoReflect.Descriptor instead.
func (*Expense) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{29}
}

func (x *Expense) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Expense) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *Expense) GetLoadId() string {
	if x != nil {
		return x.LoadId
	}
	return ""
}

func (x *Expense) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Expense) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Expense) GetIncurredAt() string {
	if x != nil {
		return x.IncurredAt
	}
	return ""
}

func (x *Expense) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

func (x *Expense) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type AddExpenseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DriverId      string                 `protobuf:"bytes,1,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	LoadId        string                 `protobuf:"bytes,2,opt,name=load_id,json=loadId,proto3" json:"load_id,omitempty"` // optional
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Amount        string                 `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	IncurredAt    string                 `protobuf:"bytes,5,opt,name=incurred_at,json=incurredAt,proto3" json:"incurred_at,omitempty"`
	Note          string                 `protobuf:"bytes,6,opt,name=note,proto3" json:"note,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddExpenseRequest) Reset() {
	*x = AddExpenseRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddExpenseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddExpenseRequest) ProtoMessage() {}

func (x *AddExpenseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddExpenseRequest.ProtoReflect.Descriptor instead.
func (*AddExpenseRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{30}
}

func (x *AddExpenseRequest) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *AddExpenseRequest) GetLoadId() string {
	if x != nil {
		return x.LoadId
	}
	return ""
}

func (x *AddExpenseRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *AddExpenseRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *AddExpenseRequest) GetIncurredAt() string {
	if x != nil {
		return x.IncurredAt
	}
	return ""
}

func (x *AddExpenseRequest) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

type AddExpenseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expense       *Expense               `protobuf:"bytes,1,opt,name=expense,proto3" json:"expense,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddExpenseResponse) Reset() {
	*x = AddExpenseResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddExpenseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddExpenseResponse) ProtoMessage() {}

func (x *AddExpenseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddExpenseResponse.ProtoReflect.Descriptor instead.
func (*AddExpenseResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{31}
}

func (x *AddExpenseResponse) GetExpense() *Expense {
	if x != nil {
		return x.Expense
	}
	return nil
}

type ListExpensesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DriverId      string                 `protobuf:"bytes,1,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExpensesRequest) Reset() {
	*x = ListExpensesRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExpensesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExpensesRequest) ProtoMessage() {}

func (x *ListExpensesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExpensesRequest.ProtoReflect.Descriptor instead.
func (*ListExpensesRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{32}
}

func (x *ListExpensesRequest) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *ListExpensesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListExpensesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListExpensesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Expenses      []*Expense             `protobuf:"bytes,1,rep,name=expenses,proto3" json:"expenses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExpensesResponse) Reset() {
	*x = ListExpensesResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExpensesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExpensesResponse) ProtoMessage() {}

func (x *ListExpensesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExpensesResponse.ProtoReflect.Descriptor instead.
func (*ListExpensesResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{33}
}

func (x *ListExpensesResponse) GetExpenses() []*Expense {
	if x != nil {
		return x.Expenses
	}
	return nil
}

type DeleteExpenseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExpenseId     string                 `protobuf:"bytes,1,opt,name=expense_id,json=expenseId,proto3" json:"expense_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExpenseRequest) Reset() {
	*x = DeleteExpenseRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExpenseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExpenseRequest) ProtoMessage() {}

func (x *DeleteExpenseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExpenseRequest.ProtoReflect.Descriptor instead.
func (*DeleteExpenseRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{34}
}

func (x *DeleteExpenseRequest) GetExpenseId() string {
	if x != nil {
		return x.ExpenseId
	}
	return ""
}

type DeleteExpenseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteExpenseResponse) Reset() {
	*x = DeleteExpenseResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteExpenseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteExpenseResponse) ProtoMessage() {}

func (x *DeleteExpenseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteExpenseResponse.ProtoReflect.Descriptor instead.
func (*DeleteExpenseResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{35}
}

type WeekSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Week          string                 `protobuf:"bytes,1,opt,name=week,proto3" json:"week,omitempty"` // ISO week key, e.g. "2025-W38"
	Loads         int32                  `protobuf:"varint,2,opt,name=loads,proto3" json:"loads,omitempty"`
	Gross         string                 `protobuf:"bytes,3,opt,name=gross,proto3" json:"gross,omitempty"`
	Miles         int32                  `protobuf:"varint,4,opt,name=miles,proto3" json:"miles,omitempty"`
	Expenses      string                 `protobuf:"bytes,5,opt,name=expenses,proto3" json:"expenses,omitempty"`
	Net           string                 `protobuf:"bytes,6,opt,name=net,proto3" json:"net,omitempty"`
	PerMile       string                 `protobuf:"bytes,7,opt,name=per_mile,json=perMile,proto3" json:"per_mile,omitempty"`
	Completed     int32                  `protobuf:"varint,8,opt,name=completed,proto3" json:"completed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WeekSummary) Reset() {
	*x = WeekSummary{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WeekSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WeekSummary) ProtoMessage() {}

func (x *WeekSummary) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WeekSummary.ProtoReflect.Descriptor instead.
func (*WeekSummary) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{36}
}

func (x *WeekSummary) GetWeek() string {
	if x != nil {
		return x.Week
	}
	return ""
}

func (x *WeekSummary) GetLoads() int32 {
	if x != nil {
		return x.Loads
	}
	return 0
}

func (x *WeekSummary) GetGross() string {
	if x != nil {
		return x.Gross
	}
	return ""
}

func (x *WeekSummary) GetMiles() int32 {
	if x != nil {
		return x.Miles
	}
	return 0
}

func (x *WeekSummary) GetExpenses() string {
	if x != nil {
		return x.Expenses
	}
	return ""
}

func (x *WeekSummary) GetNet() string {
	if x != nil {
		return x.Net
	}
	return ""
}

func (x *WeekSummary) GetPerMile() string {
	if x != nil {
		return x.PerMile
	}
	return ""
}

func (x *WeekSummary) GetCompleted() int32 {
	if x != nil {
		return x.Completed
	}
	return 0
}

type WeeklyReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DriverId      string                 `protobuf:"bytes,1,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WeeklyReportRequest) Reset() {
	*x = WeeklyReportRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WeeklyReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WeeklyReportRequest) ProtoMessage() {}

func (x *WeeklyReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WeeklyReportRequest.ProtoReflect.Descriptor instead.
func (*WeeklyReportRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{37}
}

func (x *WeeklyReportRequest) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *WeeklyReportRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *WeeklyReportRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type WeeklyReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Weeks         []*WeekSummary         `protobuf:"bytes,1,rep,name=weeks,proto3" json:"weeks,omitempty"`
	TotalNet      string                 `protobuf:"bytes,2,opt,name=total_net,json=totalNet,proto3" json:"total_net,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WeeklyReportResponse) Reset() {
	*x = WeeklyReportResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WeeklyReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WeeklyReportResponse) ProtoMessage() {}

func (x *WeeklyReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WeeklyReportResponse.ProtoReflect.Descriptor instead.
func (*WeeklyReportResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{38}
}

func (x *WeeklyReportResponse) GetWeeks() []*WeekSummary {
	if x != nil {
		return x.Weeks
	}
	return nil
}

func (x *WeeklyReportResponse) GetTotalNet() string {
	if x != nil {
		return x.TotalNet
	}
	return ""
}

type ExportLoadsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DriverId      string                 `protobuf:"bytes,1,opt,name=driver_id,json=driverId,proto3" json:"driver_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLoadsRequest) Reset() {
	*x = ExportLoadsRequest{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLoadsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLoadsRequest) ProtoMessage() {}

func (x *ExportLoadsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLoadsRequest.ProtoReflect.Descriptor instead.
func (*ExportLoadsRequest) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{39}
}

func (x *ExportLoadsRequest) GetDriverId() string {
	if x != nil {
		return x.DriverId
	}
	return ""
}

func (x *ExportLoadsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportLoadsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportLoadsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLoadsResponse) Reset() {
	*x = ExportLoadsResponse{}
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLoadsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLoadsResponse) ProtoMessage() {}

func (x *ExportLoadsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_haulboard_v1_haulboard_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLoadsResponse.ProtoReflect.Descriptor instead.
func (*ExportLoadsResponse) Descriptor() ([]byte, []int) {
	return file_haulboard_v1_haulboard_proto_rawDescGZIP(), []int{40}
}

func (x *ExportLoadsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportLoadsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_haulboard_v1_haulboard_proto protoreflect.FileDescriptor

const file_haulboard_v1_haulboard_proto_rawDesc = "" +
	"\n" +
	"\x1chaulboard/v1/haulboard.proto\x12\fhaulboard.v1\"j\n" +
	"\x06Driver\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"created_at\x18\x03 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x04 \x01(\tR\tupdatedAt\")\n" +
	"\x13CreateDriverRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"D\n" +
	"\x14CreateDriverResponse\x12,\n" +
	"\x06driver\x18\x01 \x01(\v2\x14.haulboard.v1.DriverR\x06driver\"\x14\n" +
	"\x12ListDriversRequest\"E\n" +
	"\x13ListDriversResponse\x12.\n" +
	"\adrivers\x18\x01 \x03(\v2\x14.haulboard.v1.DriverR\adrivers\"\xc3\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tdriver_id\x18\x02 \x01(\tR\bdriverId\x12\x17\n" +
	"\aload_id\x18\x03 \x01(\tR\x06loadId\x12\x19\n" +
	"\bdoc_type\x18\x04 \x01(\tR\adocType\x12\x1a\n" +
	"\bfilename\x18\x05 \x01(\tR\bfilename\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12(\n" +
	"\x10content_hash_hex\x18\a \x01(\tR\x0econtentHashHex\x12\x1b\n" +
	"\tmime_type\x18\b \x01(\tR\bmimeType\x12\x1b\n" +
	"\tfile_size\x18\t \x01(\x03R\bfileSize\x12\x14\n" +
	"\x05label\x18\n" +
	" \x01(\tR\x05label\x12\x1f\n" +
	"\vuploaded_at\x18\v \x01(\tR\n" +
	"uploadedAt\"\xa2\x01\n" +
	"\x15UploadDocumentRequest\x12\x1b\n" +
	"\tdriver_id\x18\x01 \x01(\tR\bdriverId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1b\n" +
	"\tmime_type\x18\x03 \x01(\tR\bmimeType\x12\x19\n" +
	"\bdoc_type\x18\x04 \x01(\tR\adocType\x12\x18\n" +
	"\acontent\x18\x05 \x01(\fR\acontent\"p\n" +
	"\x16UploadDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.haulboard.v1.DocumentR\bdocument\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\"3\n" +
	"\x14ListDocumentsRequest\x12\x1b\n" +
	"\tdriver_id\x18\x01 \x01(\tR\bdriverId\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.haulboard.v1.DocumentR\tdocuments\"O\n" +
	"\x16ExtractDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05async\x18\x02 \x01(\bR\x05async\"~\n" +
	"\x17ExtractDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06queued\x18\x02 \x01(\bR\x06queued\x12*\n" +
	"\x03job\x18\x03 \x01(\v2\x18.haulboard.v1.ExtractJobR\x03job\"\xc5\x03\n" +
	"\n" +
	"ExtractJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x17\n" +
	"\aload_id\x18\x03 \x01(\tR\x06loadId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"ocr_method\x18\x05 \x01(\tR\tocrMethod\x12\x14\n" +
	"\x05pages\x18\x06 \x01(\x05R\x05pages\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x02R\n" +
	"confidence\x12!\n" +
	"\fneeds_review\x18\b \x01(\bR\vneedsReview\x12%\n" +
	"\x0eextracted_json\x18\t \x01(\tR\rextractedJson\x12(\n" +
	"\x10field_spans_json\x18\n" +
	" \x01(\tR\x0efieldSpansJson\x12'\n" +
	"\x0fsuggested_label\x18\v \x01(\tR\x0esuggestedLabel\x12#\n" +
	"\rerror_message\x18\f \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"started_at\x18\r \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x0e \x01(\tR\n" +
	"finishedAt\"-\n" +
	"\x14GetExtractionRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"C\n" +
	"\x15GetExtractionResponse\x12*\n" +
	"\x03job\x18\x01 \x01(\v2\x18.haulboard.v1.ExtractJobR\x03job\"\xb7\x02\n" +
	"\x12LoadFieldOverrides\x12\x1b\n" +
	"\tgross_pay\x18\x01 \x01(\tR\bgrossPay\x12\x14\n" +
	"\x05miles\x18\x02 \x01(\tR\x05miles\x12\x1f\n" +
	"\vpickup_date\x18\x03 \x01(\tR\n" +
	"pickupDate\x12#\n" +
	"\rdelivery_date\x18\x04 \x01(\tR\fdeliveryDate\x12\x16\n" +
	"\x06origin\x18\x05 \x01(\tR\x06origin\x12 \n" +
	"\vdestination\x18\x06 \x01(\tR\vdestination\x12!\n" +
	"\fpickup_state\x18\a \x01(\tR\vpickupState\x12\x1d\n" +
	"\n" +
	"drop_state\x18\b \x01(\tR\tdropState\x12\x16\n" +
	"\x06status\x18\t \x01(\tR\x06status\x12\x14\n" +
	"\x05label\x18\n" +
	" \x01(\tR\x05label\"k\n" +
	"\x12ApplyToLoadRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12>\n" +
	"\toverrides\x18\x02 \x01(\v2 .haulboard.v1.LoadFieldOverridesR\toverrides\"U\n" +
	"\x13ApplyToLoadResponse\x12&\n" +
	"\x04load\x18\x01 \x01(\v2\x12.haulboard.v1.LoadR\x04load\x12\x16\n" +
	"\x06merged\x18\x02 \x01(\bR\x06merged\"g\n" +
	"\x15AttachDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x17\n" +
	"\aload_id\x18\x02 \x01(\tR\x06loadId\x12\x14\n" +
	"\x05label\x18\x03 \x01(\tR\x05label\"L\n" +
	"\x16AttachDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.haulboard.v1.DocumentR\bdocument\"\xd2\x03\n" +
	"\x04Load\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tdriver_id\x18\x02 \x01(\tR\bdriverId\x12\x14\n" +
	"\x05label\x18\x03 \x01(\tR\x05label\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1b\n" +
	"\tgross_pay\x18\x05 \x01(\tR\bgrossPay\x12\x14\n" +
	"\x05miles\x18\x06 \x01(\x05R\x05miles\x12\x1f\n" +
	"\vpickup_date\x18\a \x01(\tR\n" +
	"pickupDate\x12#\n" +
	"\rdelivery_date\x18\b \x01(\tR\fdeliveryDate\x12\x16\n" +
	"\x06origin\x18\t \x01(\tR\x06origin\x12 \n" +
	"\vdestination\x18\n" +
	" \x01(\tR\vdestination\x12!\n" +
	"\fpickup_state\x18\v \x01(\tR\vpickupState\x12\x1d\n" +
	"\n" +
	"drop_state\x18\f \x01(\tR\tdropState\x12\x1d\n" +
	"\n" +
	"bol_number\x18\r \x01(\tR\tbolNumber\x12\x1d\n" +
	"\n" +
	"net_profit\x18\x0e \x01(\tR\tnetProfit\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAt\")\n" +
	"\x0eGetLoadRequest\x12\x17\n" +
	"\aload_id\x18\x01 \x01(\tR\x06loadId\"9\n" +
	"\x0fGetLoadResponse\x12&\n" +
	"\x04load\x18\x01 \x01(\v2\x12.haulboard.v1.LoadR\x04load\"}\n" +
	"\x10ListLoadsRequest\x12\x1b\n" +
	"\tdriver_id\x18\x01 \x01(\tR\bdriverId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\"=\n" +
	"\x11ListLoadsResponse\x12(\n" +
	"\x05loads\x18\x01 \x03(\v2\x12.haulboard.v1.LoadR\x05loads\"J\n" +
	"\x17UpdateLoadStatusRequest\x12\x17\n" +
	"\aload_id\x18\x01 \x01(\tR\x06loadId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"B\n" +
	"\x18UpdateLoadStatusResponse\x12&\n" +
	"\x04load\x18\x01 \x01(\v2\x12.haulboard.v1.LoadR\x04load\",\n" +
	"\x11DeleteLoadRequest\x12\x17\n" +
	"\aload_id\x18\x01 \x01(\tR\x06loadId\"\x14\n" +
	"\x12DeleteLoadResponse\"\xd7\x01\n" +
	"\aExpense\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tdriver_id\x18\x02 \x01(\tR\bdriverId\x12\x17\n" +
	"\aload_id\x18\x03 \x01(\tR\x06loadId\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\tR\x06amount\x12\x1f\n" +
	"\vincurred_at\x18\x06 \x01(\tR\n" +
	"incurredAt\x12\x12\n" +
	"\x04note\x18\a \x01(\tR\x04note\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"\xb2\x01\n" +
	"\x11AddExpenseRequest\x12\x1b\n" +
	"\tdriver_id\x18\x01 \x01(\tR\bdriverId\x12\x17\n" +
	"\aload_id\x18\x02 \x01(\tR\x06loadId\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\tR\x06amount\x12\x1f\n" +
	"\vincurred_at\x18\x05 \x01(\tR\n" +
	"incurredAt\x12\x12\n" +
	"\x04note\x18\x06 \x01(\tR\x04note\"E\n" +
	"\x12AddExpenseResponse\x12/\n" +
	"\aexpense\x18\x01 \x01(\v2\x15.haulboard.v1.ExpenseR\aexpense\"h\n" +
	"\x13ListExpensesRequest\x12\x1b\n" +
	"\tdriver_id\x18\x01 \x01(\tR\bdriverId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"I\n" +
	"\x14ListExpensesResponse\x121\n" +
	"\bexpenses\x18\x01 \x03(\v2\x15.haulboard.v1.ExpenseR\bexpenses\"5\n" +
	"\x14DeleteExpenseRequest\x12\x1d\n" +
	"\n" +
	"expense_id\x18\x01 \x01(\tR\texpenseId\"\x17\n" +
	"\x15DeleteExpenseResponse\"\xca\x01\n" +
	"\vWeekSummary\x12\x12\n" +
	"\x04week\x18\x01 \x01(\tR\x04week\x12\x14\n" +
	"\x05loads\x18\x02 \x01(\x05R\x05loads\x12\x14\n" +
	"\x05gross\x18\x03 \x01(\tR\x05gross\x12\x14\n" +
	"\x05miles\x18\x04 \x01(\x05R\x05miles\x12\x1a\n" +
	"\bexpenses\x18\x05 \x01(\tR\bexpenses\x12\x10\n" +
	"\x03net\x18\x06 \x01(\tR\x03net\x12\x19\n" +
	"\bper_mile\x18\a \x01(\tR\aperMile\x12\x1c\n" +
	"\tcompleted\x18\b \x01(\x05R\tcompleted\"h\n" +
	"\x13WeeklyReportRequest\x12\x1b\n" +
	"\tdriver_id\x18\x01 \x01(\tR\bdriverId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"d\n" +
	"\x14WeeklyReportResponse\x12/\n" +
	"\x05weeks\x18\x01 \x03(\v2\x19.haulboard.v1.WeekSummaryR\x05weeks\x12\x1b\n" +
	"\ttotal_net\x18\x02 \x01(\tR\btotalNet\"g\n" +
	"\x12ExportLoadsRequest\x12\x1b\n" +
	"\tdriver_id\x18\x01 \x01(\tR\bdriverId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"E\n" +
	"\x13ExportLoadsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xbb\x01\n" +
	"\x0eDriversService\x12U\n" +
	"\fCreateDriver\x12!.haulboard.v1.CreateDriverRequest\x1a\".haulboard.v1.CreateDriverResponse\x12R\n" +
	"\vListDrivers\x12 .haulboard.v1.ListDriversRequest\x1a!.haulboard.v1.ListDriversResponse2\xb4\x04\n" +
	"\x10DocumentsService\x12[\n" +
	"\x0eUploadDocument\x12#.haulboard.v1.UploadDocumentRequest\x1a$.haulboard.v1.UploadDocumentResponse\x12X\n" +
	"\rListDocuments\x12\".haulboard.v1.ListDocumentsRequest\x1a#.haulboard.v1.ListDocumentsResponse\x12^\n" +
	"\x0fExtractDocument\x12$.haulboard.v1.ExtractDocumentRequest\x1a%.haulboard.v1.ExtractDocumentResponse\x12X\n" +
	"\rGetExtraction\x12\".haulboard.v1.GetExtractionRequest\x1a#.haulboard.v1.GetExtractionResponse\x12R\n" +
	"\vApplyToLoad\x12 .haulboard.v1.ApplyToLoadRequest\x1a!.haulboard.v1.ApplyToLoadResponse\x12[\n" +
	"\x0eAttachDocument\x12#.haulboard.v1.AttachDocumentRequest\x1a$.haulboard.v1.AttachDocumentResponse2\xd8\x02\n" +
	"\fLoadsService\x12F\n" +
	"\aGetLoad\x12\x1c.haulboard.v1.GetLoadRequest\x1a\x1d.haulboard.v1.GetLoadResponse\x12L\n" +
	"\tListLoads\x12\x1e.haulboard.v1.ListLoadsRequest\x1a\x1f.haulboard.v1.ListLoadsResponse\x12a\n" +
	"\x10UpdateLoadStatus\x12%.haulboard.v1.UpdateLoadStatusRequest\x1a&.haulboard.v1.UpdateLoadStatusResponse\x12O\n" +
	"\n" +
	"DeleteLoad\x12\x1f.haulboard.v1.DeleteLoadRequest\x1a .haulboard.v1.DeleteLoadResponse2\x93\x02\n" +
	"\x0fExpensesService\x12O\n" +
	"\n" +
	"AddExpense\x12\x1f.haulboard.v1.AddExpenseRequest\x1a .haulboard.v1.AddExpenseResponse\x12U\n" +
	"\fListExpenses\x12!.haulboard.v1.ListExpensesRequest\x1a\".haulboard.v1.ListExpensesResponse\x12X\n" +
	"\rDeleteExpense\x12\".haulboard.v1.DeleteExpenseRequest\x1a#.haulboard.v1.DeleteExpenseResponse2\xbb\x01\n" +
	"\x0eReportsService\x12U\n" +
	"\fWeeklyReport\x12!.haulboard.v1.WeeklyReportRequest\x1a\".haulboard.v1.WeeklyReportResponse\x12R\n" +
	"\vExportLoads\x12 .haulboard.v1.ExportLoadsRequest\x1a!.haulboard.v1.ExportLoadsResponseBCZAgithub.com/haulboard/haulboard/gen/proto/haulboard/v1;haulboardv1b\x06proto3"

var (
	file_haulboard_v1_haulboard_proto_rawDescOnce sync.Once
	file_haulboard_v1_haulboard_proto_rawDescData []byte
)

func file_haulboard_v1_haulboard_proto_rawDescGZIP() []byte {
	file_haulboard_v1_haulboard_proto_rawDescOnce.Do(func() {
		file_haulboard_v1_haulboard_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_haulboard_v1_haulboard_proto_rawDesc), len(file_haulboard_v1_haulboard_proto_rawDesc)))
	})
	return file_haulboard_v1_haulboard_proto_rawDescData
}

var file_haulboard_v1_haulboard_proto_msgTypes = make([]protoimpl.MessageInfo, 41)
var file_haulboard_v1_haulboard_proto_goTypes = []any{
	(*Driver)(nil),                   // 0: haulboard.v1.Driver
	(*CreateDriverRequest)(nil),      // 1: haulboard.v1.CreateDriverRequest
	(*CreateDriverResponse)(nil),     // 2: haulboard.v1.CreateDriverResponse
	(*ListDriversRequest)(nil),       // 3: haulboard.v1.ListDriversRequest
	(*ListDriversResponse)(nil),      // 4: haulboard.v1.ListDriversResponse
	(*Document)(nil),                 // 5: haulboard.v1.Document
	(*UploadDocumentRequest)(nil),    // 6: haulboard.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),   // 7: haulboard.v1.UploadDocumentResponse
	(*ListDocumentsRequest)(nil),     // 8: haulboard.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),    // 9: haulboard.v1.ListDocumentsResponse
	(*ExtractDocumentRequest)(nil),   // 10: haulboard.v1.ExtractDocumentRequest
	(*ExtractDocumentResponse)(nil),  // 11: haulboard.v1.ExtractDocumentResponse
	(*ExtractJob)(nil),               // 12: haulboard.v1.ExtractJob
	(*GetExtractionRequest)(nil),     // 13: haulboard.v1.GetExtractionRequest
	(*GetExtractionResponse)(nil),    // 14: haulboard.v1.GetExtractionResponse
	(*LoadFieldOverrides)(nil),       // 15: haulboard.v1.LoadFieldOverrides
	(*ApplyToLoadRequest)(nil),       // 16: haulboard.v1.ApplyToLoadRequest
	(*ApplyToLoadResponse)(nil),      // 17: haulboard.v1.ApplyToLoadResponse
	(*AttachDocumentRequest)(nil),    // 18: haulboard.v1.AttachDocumentRequest
	(*AttachDocumentResponse)(nil),   // 19: haulboard.v1.AttachDocumentResponse
	(*Load)(nil),                     // 20: haulboard.v1.Load
	(*GetLoadRequest)(nil),           // 21: haulboard.v1.GetLoadRequest
	(*GetLoadResponse)(nil),          // 22: haulboard.v1.GetLoadResponse
	(*ListLoadsRequest)(nil),         // 23: haulboard.v1.ListLoadsRequest
	(*ListLoadsResponse)(nil),        // 24: haulboard.v1.ListLoadsResponse
	(*UpdateLoadStatusRequest)(nil),  // 25: haulboard.v1.UpdateLoadStatusRequest
	(*UpdateLoadStatusResponse)(nil), // 26: haulboard.v1.UpdateLoadStatusResponse
	(*DeleteLoadRequest)(nil),        // 27: haulboard.v1.DeleteLoadRequest
	(*DeleteLoadResponse)(nil),       // 28: haulboard.v1.DeleteLoadResponse
	(*Expense)(nil),                  // 29: haulboard.v1.Expense
	(*AddExpenseRequest)(nil),        // 30: haulboard.v1.AddExpenseRequest
	(*AddExpenseResponse)(nil),       // 31: haulboard.v1.AddExpenseResponse
	(*ListExpensesRequest)(nil),      // 32: haulboard.v1.ListExpensesRequest
	(*ListExpensesResponse)(nil),     // 33: haulboard.v1.ListExpensesResponse
	(*DeleteExpenseRequest)(nil),     // 34: haulboard.v1.DeleteExpenseRequest
	(*DeleteExpenseResponse)(nil),    // 35: haulboard.v1.DeleteExpenseResponse
	(*WeekSummary)(nil),              // 36: haulboard.v1.WeekSummary
	(*WeeklyReportRequest)(nil),      // 37: haulboard.v1.WeeklyReportRequest
	(*WeeklyReportResponse)(nil),     // 38: haulboard.v1.WeeklyReportResponse
	(*ExportLoadsRequest)(nil),       // 39: haulboard.v1.ExportLoadsRequest
	(*ExportLoadsResponse)(nil),      // 40: haulboard.v1.ExportLoadsResponse
}
var file_haulboard_v1_haulboard_proto_depIdxs = []int32{
	0,  // 0: haulboard.v1.CreateDriverResponse.driver:type_name -> haulboard.v1.Driver
	0,  // 1: haulboard.v1.ListDriversResponse.drivers:type_name -> haulboard.v1.Driver
	5,  // 2: haulboard.v1.UploadDocumentResponse.document:type_name -> haulboard.v1.Document
	5,  // 3: haulboard.v1.ListDocumentsResponse.documents:type_name -> haulboard.v1.Document
	12, // 4: haulboard.v1.ExtractDocumentResponse.job:type_name -> haulboard.v1.ExtractJob
	12, // 5: haulboard.v1.GetExtractionResponse.job:type_name -> haulboard.v1.ExtractJob
	15, // 6: haulboard.v1.ApplyToLoadRequest.overrides:type_name -> haulboard.v1.LoadFieldOverrides
	20, // 7: haulboard.v1.ApplyToLoadResponse.load:type_name -> haulboard.v1.Load
	5,  // 8: haulboard.v1.AttachDocumentResponse.document:type_name -> haulboard.v1.Document
	20, // 9: haulboard.v1.GetLoadResponse.load:type_name -> haulboard.v1.Load
	20, // 10: haulboard.v1.ListLoadsResponse.loads:type_name -> haulboard.v1.Load
	20, // 11: haulboard.v1.UpdateLoadStatusResponse.load:type_name -> haulboard.v1.Load
	29, // 12: haulboard.v1.AddExpenseResponse.expense:type_name -> haulboard.v1.Expense
	29, // 13: haulboard.v1.ListExpensesResponse.expenses:type_name -> haulboard.v1.Expense
	36, // 14: haulboard.v1.WeeklyReportResponse.weeks:type_name -> haulboard.v1.WeekSummary
	1,  // 15: haulboard.v1.DriversService.CreateDriver:input_type -> haulboard.v1.CreateDriverRequest
	3,  // 16: haulboard.v1.DriversService.ListDrivers:input_type -> haulboard.v1.ListDriversRequest
	6,  // 17: haulboard.v1.DocumentsService.UploadDocument:input_type -> haulboard.v1.UploadDocumentRequest
	8,  // 18: haulboard.v1.DocumentsService.ListDocuments:input_type -> haulboard.v1.ListDocumentsRequest
	10, // 19: haulboard.v1.DocumentsService.ExtractDocument:input_type -> haulboard.v1.ExtractDocumentRequest
	13, // 20: haulboard.v1.DocumentsService.GetExtraction:input_type -> haulboard.v1.GetExtractionRequest
	16, // 21: haulboard.v1.DocumentsService.ApplyToLoad:input_type -> haulboard.v1.ApplyToLoadRequest
	18, // 22: haulboard.v1.DocumentsService.AttachDocument:input_type -> haulboard.v1.AttachDocumentRequest
	21, // 23: haulboard.v1.LoadsService.GetLoad:input_type -> haulboard.v1.GetLoadRequest
	23, // 24: haulboard.v1.LoadsService.ListLoads:input_type -> haulboard.v1.ListLoadsRequest
	25, // 25: haulboard.v1.LoadsService.UpdateLoadStatus:input_type -> haulboard.v1.UpdateLoadStatusRequest
	27, // 26: haulboard.v1.LoadsService.DeleteLoad:input_type -> haulboard.v1.DeleteLoadRequest
	30, // 27: haulboard.v1.ExpensesService.AddExpense:input_type -> haulboard.v1.AddExpenseRequest
	32, // 28: haulboard.v1.ExpensesService.ListExpenses:input_type -> haulboard.v1.ListExpensesRequest
	34, // 29: haulboard.v1.ExpensesService.DeleteExpense:input_type -> haulboard.v1.DeleteExpenseRequest
	37, // 30: haulboard.v1.ReportsService.WeeklyReport:input_type -> haulboard.v1.WeeklyReportRequest
	39, // 31: haulboard.v1.ReportsService.ExportLoads:input_type -> haulboard.v1.ExportLoadsRequest
	2,  // 32: haulboard.v1.DriversService.CreateDriver:output_type -> haulboard.v1.CreateDriverResponse
	4,  // 33: haulboard.v1.DriversService.ListDrivers:output_type -> haulboard.v1.ListDriversResponse
	7,  // 34: haulboard.v1.DocumentsService.UploadDocument:output_type -> haulboard.v1.UploadDocumentResponse
	9,  // 35: haulboard.v1.DocumentsService.ListDocuments:output_type -> haulboard.v1.ListDocumentsResponse
	11, // 36: haulboard.v1.DocumentsService.ExtractDocument:output_type -> haulboard.v1.ExtractDocumentResponse
	14, // 37: haulboard.v1.DocumentsService.GetExtraction:output_type -> haulboard.v1.GetExtractionResponse
	17, // 38: haulboard.v1.DocumentsService.ApplyToLoad:output_type -> haulboard.v1.ApplyToLoadResponse
	19, // 39: haulboard.v1.DocumentsService.AttachDocument:output_type -> haulboard.v1.AttachDocumentResponse
	22, // 40: haulboard.v1.LoadsService.GetLoad:output_type -> haulboard.v1.GetLoadResponse
	24, // 41: haulboard.v1.LoadsService.ListLoads:output_type -> haulboard.v1.ListLoadsResponse
	26, // 42: haulboard.v1.LoadsService.UpdateLoadStatus:output_type -> haulboard.v1.UpdateLoadStatusResponse
	28, // 43: haulboard.v1.LoadsService.DeleteLoad:output_type -> haulboard.v1.DeleteLoadResponse
	31, // 44: haulboard.v1.ExpensesService.AddExpense:output_type -> haulboard.v1.AddExpenseResponse
	33, // 45: haulboard.v1.ExpensesService.ListExpenses:output_type -> haulboard.v1.ListExpensesResponse
	35, // 46: haulboard.v1.ExpensesService.DeleteExpense:output_type -> haulboard.v1.DeleteExpenseResponse
	38, // 47: haulboard.v1.ReportsService.WeeklyReport:output_type -> haulboard.v1.WeeklyReportResponse
	40, // 48: haulboard.v1.ReportsService.ExportLoads:output_type -> haulboard.v1.ExportLoadsResponse
	32, // [32:49] is the sub-list for method output_type
	15, // [15:32] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_haulboard_v1_haulboard_proto_init() }
func file_haulboard_v1_haulboard_proto_init() {
	if File_haulboard_v1_haulboard_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_haulboard_v1_haulboard_proto_rawDesc), len(file_haulboard_v1_haulboard_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   41,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_haulboard_v1_haulboard_proto_goTypes,
		DependencyIndexes: file_haulboard_v1_haulboard_proto_depIdxs,
		MessageInfos:      file_haulboard_v1_haulboard_proto_msgTypes,
	}.Build()
	File_haulboard_v1_haulboard_proto = out.File
	file_haulboard_v1_haulboard_proto_goTypes = nil
	file_haulboard_v1_haulboard_proto_depIdxs = nil
}
