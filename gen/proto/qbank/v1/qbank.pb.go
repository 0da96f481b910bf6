// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: qbank/v1/qbank.proto

package qbankpb

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

type ExtractRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Document       []byte                 `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	FileName       string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	SubjectName    string                 `protobuf:"bytes,3,opt,name=subject_name,json=subjectName,proto3" json:"subject_name,omitempty"`
	ClassName      string                 `protobuf:"bytes,4,opt,name=class_name,json=className,proto3" json:"class_name,omitempty"`
	Specialization string                 `protobuf:"bytes,5,opt,name=specialization,proto3" json:"specialization,omitempty"`
	UploadedBy     string                 `protobuf:"bytes,6,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExtractRequest) Reset() {
	*x = ExtractRequest{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractRequest) ProtoMessage() {}

func (x *ExtractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractRequest.ProtoReflect.Descriptor instead.
func (*ExtractRequest) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractRequest) GetDocument() []byte {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *ExtractRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *ExtractRequest) GetSubjectName() string {
	if x != nil {
		return x.SubjectName
	}
	return ""
}

func (x *ExtractRequest) GetClassName() string {
	if x != nil {
		return x.ClassName
	}
	return ""
}

func (x *ExtractRequest) GetSpecialization() string {
	if x != nil {
		return x.Specialization
	}
	return ""
}

func (x *ExtractRequest) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

type ExtractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summary       *JobSummary            `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractResponse) Reset() {
	*x = ExtractResponse{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractResponse) ProtoMessage() {}

func (x *ExtractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractResponse.ProtoReflect.Descriptor instead.
func (*ExtractResponse) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractResponse) GetSummary() *JobSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{2}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summary       *JobSummary            `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobResponse) GetSummary() *JobSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type JobSummary struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	JobId              string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status             string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	TotalPagesDetected int32                  `protobuf:"varint,3,opt,name=total_pages_detected,json=totalPagesDetected,proto3" json:"total_pages_detected,omitempty"`
	PagesWithContent   int32                  `protobuf:"varint,4,opt,name=pages_with_content,json=pagesWithContent,proto3" json:"pages_with_content,omitempty"`
	PagesSkipped       int32                  `protobuf:"varint,5,opt,name=pages_skipped,json=pagesSkipped,proto3" json:"pages_skipped,omitempty"`
	PagesFailed        int32                  `protobuf:"varint,6,opt,name=pages_failed,json=pagesFailed,proto3" json:"pages_failed,omitempty"`
	QuestionsStored    int32                  `protobuf:"varint,7,opt,name=questions_stored,json=questionsStored,proto3" json:"questions_stored,omitempty"`
	Pages              []*PageOutcome         `protobuf:"bytes,8,rep,name=pages,proto3" json:"pages,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *JobSummary) Reset() {
	*x = JobSummary{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobSummary) ProtoMessage() {}

func (x *JobSummary) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobSummary.ProtoReflect.Descriptor instead.
func (*JobSummary) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{4}
}

func (x *JobSummary) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *JobSummary) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *JobSummary) GetTotalPagesDetected() int32 {
	if x != nil {
		return x.TotalPagesDetected
	}
	return 0
}

func (x *JobSummary) GetPagesWithContent() int32 {
	if x != nil {
		return x.PagesWithContent
	}
	return 0
}

func (x *JobSummary) GetPagesSkipped() int32 {
	if x != nil {
		return x.PagesSkipped
	}
	return 0
}

func (x *JobSummary) GetPagesFailed() int32 {
	if x != nil {
		return x.PagesFailed
	}
	return 0
}

func (x *JobSummary) GetQuestionsStored() int32 {
	if x != nil {
		return x.QuestionsStored
	}
	return 0
}

func (x *JobSummary) GetPages() []*PageOutcome {
	if x != nil {
		return x.Pages
	}
	return nil
}

type PageOutcome struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	PageNumber         int32                  `protobuf:"varint,1,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
	Status             string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	QuestionsExtracted int32                  `protobuf:"varint,3,opt,name=questions_extracted,json=questionsExtracted,proto3" json:"questions_extracted,omitempty"`
	Error              string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *PageOutcome) Reset() {
	*x = PageOutcome{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PageOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PageOutcome) ProtoMessage() {}

func (x *PageOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PageOutcome.ProtoReflect.Descriptor instead.
func (*PageOutcome) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{5}
}

func (x *PageOutcome) GetPageNumber() int32 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

func (x *PageOutcome) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *PageOutcome) GetQuestionsExtracted() int32 {
	if x != nil {
		return x.QuestionsExtracted
	}
	return 0
}

func (x *PageOutcome) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ListQuestionsRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	JobId              string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	SubjectName        string                 `protobuf:"bytes,2,opt,name=subject_name,json=subjectName,proto3" json:"subject_name,omitempty"`
	QuestionType       string                 `protobuf:"bytes,3,opt,name=question_type,json=questionType,proto3" json:"question_type,omitempty"`
	QuestionDifficulty string                 `protobuf:"bytes,4,opt,name=question_difficulty,json=questionDifficulty,proto3" json:"question_difficulty,omitempty"`
	ClassName          string                 `protobuf:"bytes,5,opt,name=class_name,json=className,proto3" json:"class_name,omitempty"`
	LessonTitle        string                 `protobuf:"bytes,6,opt,name=lesson_title,json=lessonTitle,proto3" json:"lesson_title,omitempty"`
	Limit              int32                  `protobuf:"varint,7,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset             int32                  `protobuf:"varint,8,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ListQuestionsRequest) Reset() {
	*x = ListQuestionsRequest{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuestionsRequest) ProtoMessage() {}

func (x *ListQuestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuestionsRequest.ProtoReflect.Descriptor instead.
func (*ListQuestionsRequest) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{6}
}

func (x *ListQuestionsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ListQuestionsRequest) GetSubjectName() string {
	if x != nil {
		return x.SubjectName
	}
	return ""
}

func (x *ListQuestionsRequest) GetQuestionType() string {
	if x != nil {
		return x.QuestionType
	}
	return ""
}

func (x *ListQuestionsRequest) GetQuestionDifficulty() string {
	if x != nil {
		return x.QuestionDifficulty
	}
	return ""
}

func (x *ListQuestionsRequest) GetClassName() string {
	if x != nil {
		return x.ClassName
	}
	return ""
}

func (x *ListQuestionsRequest) GetLessonTitle() string {
	if x != nil {
		return x.LessonTitle
	}
	return ""
}

func (x *ListQuestionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListQuestionsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListQuestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Questions     []*Question            `protobuf:"bytes,1,rep,name=questions,proto3" json:"questions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListQuestionsResponse) Reset() {
	*x = ListQuestionsResponse{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListQuestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListQuestionsResponse) ProtoMessage() {}

func (x *ListQuestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListQuestionsResponse.ProtoReflect.Descriptor instead.
func (*ListQuestionsResponse) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{7}
}

func (x *ListQuestionsResponse) GetQuestions() []*Question {
	if x != nil {
		return x.Questions
	}
	return nil
}

type GetQuestionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuestionRequest) Reset() {
	*x = GetQuestionRequest{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuestionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuestionRequest) ProtoMessage() {}

func (x *GetQuestionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuestionRequest.ProtoReflect.Descriptor instead.
func (*GetQuestionRequest) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{8}
}

func (x *GetQuestionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetQuestionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Question      *Question              `protobuf:"bytes,1,opt,name=question,proto3" json:"question,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuestionResponse) Reset() {
	*x = GetQuestionResponse{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuestionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuestionResponse) ProtoMessage() {}

func (x *GetQuestionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuestionResponse.ProtoReflect.Descriptor instead.
func (*GetQuestionResponse) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{9}
}

func (x *GetQuestionResponse) GetQuestion() *Question {
	if x != nil {
		return x.Question
	}
	return nil
}

type Question struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId              string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	FileName           string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	SubjectName        string                 `protobuf:"bytes,4,opt,name=subject_name,json=subjectName,proto3" json:"subject_name,omitempty"`
	LessonTitle        string                 `protobuf:"bytes,5,opt,name=lesson_title,json=lessonTitle,proto3" json:"lesson_title,omitempty"`
	ClassName          string                 `protobuf:"bytes,6,opt,name=class_name,json=className,proto3" json:"class_name,omitempty"`
	Specialization     string                 `protobuf:"bytes,7,opt,name=specialization,proto3" json:"specialization,omitempty"`
	Question           string                 `protobuf:"bytes,8,opt,name=question,proto3" json:"question,omitempty"`
	QuestionType       string                 `protobuf:"bytes,9,opt,name=question_type,json=questionType,proto3" json:"question_type,omitempty"`
	QuestionDifficulty string                 `protobuf:"bytes,10,opt,name=question_difficulty,json=questionDifficulty,proto3" json:"question_difficulty,omitempty"`
	PageNumber         int32                  `protobuf:"varint,11,opt,name=page_number,json=pageNumber,proto3" json:"page_number,omitempty"`
	AnswerSteps        string                 `protobuf:"bytes,12,opt,name=answer_steps,json=answerSteps,proto3" json:"answer_steps,omitempty"`
	CorrectAnswer      string                 `protobuf:"bytes,13,opt,name=correct_answer,json=correctAnswer,proto3" json:"correct_answer,omitempty"`
	Options            []string               `protobuf:"bytes,14,rep,name=options,proto3" json:"options,omitempty"`
	UploadedBy         string                 `protobuf:"bytes,15,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	UpdatedBy          string                 `protobuf:"bytes,16,opt,name=updated_by,json=updatedBy,proto3" json:"updated_by,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          string                 `protobuf:"bytes,18,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Question) Reset() {
	*x = Question{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Question) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Question) ProtoMessage() {}

func (x *Question) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Question.ProtoReflect.Descriptor instead.
func (*Question) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{10}
}

func (x *Question) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Question) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Question) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Question) GetSubjectName() string {
	if x != nil {
		return x.SubjectName
	}
	return ""
}

func (x *Question) GetLessonTitle() string {
	if x != nil {
		return x.LessonTitle
	}
	return ""
}

func (x *Question) GetClassName() string {
	if x != nil {
		return x.ClassName
	}
	return ""
}

func (x *Question) GetSpecialization() string {
	if x != nil {
		return x.Specialization
	}
	return ""
}

func (x *Question) GetQuestion() string {
	if x != nil {
		return x.Question
	}
	return ""
}

func (x *Question) GetQuestionType() string {
	if x != nil {
		return x.QuestionType
	}
	return ""
}

func (x *Question) GetQuestionDifficulty() string {
	if x != nil {
		return x.QuestionDifficulty
	}
	return ""
}

func (x *Question) GetPageNumber() int32 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

func (x *Question) GetAnswerSteps() string {
	if x != nil {
		return x.AnswerSteps
	}
	return ""
}

func (x *Question) GetCorrectAnswer() string {
	if x != nil {
		return x.CorrectAnswer
	}
	return ""
}

func (x *Question) GetOptions() []string {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *Question) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *Question) GetUpdatedBy() string {
	if x != nil {
		return x.UpdatedBy
	}
	return ""
}

func (x *Question) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Question) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ExportQuestionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	SubjectName   string                 `protobuf:"bytes,2,opt,name=subject_name,json=subjectName,proto3" json:"subject_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportQuestionsRequest) Reset() {
	*x = ExportQuestionsRequest{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportQuestionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportQuestionsRequest) ProtoMessage() {}

func (x *ExportQuestionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportQuestionsRequest.ProtoReflect.Descriptor instead.
func (*ExportQuestionsRequest) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{11}
}

func (x *ExportQuestionsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExportQuestionsRequest) GetSubjectName() string {
	if x != nil {
		return x.SubjectName
	}
	return ""
}

type ExportQuestionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportQuestionsResponse) Reset() {
	*x = ExportQuestionsResponse{}
	mi := &file_qbank_v1_qbank_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportQuestionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportQuestionsResponse) ProtoMessage() {}

func (x *ExportQuestionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_qbank_v1_qbank_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportQuestionsResponse.ProtoReflect.Descriptor instead.
func (*ExportQuestionsResponse) Descriptor() ([]byte, []int) {
	return file_qbank_v1_qbank_proto_rawDescGZIP(), []int{12}
}

func (x *ExportQuestionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_qbank_v1_qbank_proto protoreflect.FileDescriptor

const file_qbank_v1_qbank_proto_rawDesc = "" +
	"\n" +
	"\x14qbank/v1/qbank.proto\x12\bqbank.v1\"\xd4\x01\n" +
	"\x0eExtractRequest\x12\x1a\n" +
	"\bdocument\x18\x01 \x01(\fR\bdocument\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12!\n" +
	"\fsubject_name\x18\x03 \x01(\tR\vsubjectName\x12\x1d\n" +
	"\n" +
	"class_name\x18\x04 \x01(\tR\tclassName\x12&\n" +
	"\x0especialization\x18\x05 \x01(\tR\x0especialization\x12\x1f\n" +
	"\vuploaded_by\x18\x06 \x01(\tR\n" +
	"uploadedBy\"A\n" +
	"\x0fExtractResponse\x12.\n" +
	"\asummary\x18\x01 \x01(\v2\x14.qbank.v1.JobSummaryR\asummary\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"@\n" +
	"\x0eGetJobResponse\x12.\n" +
	"\asummary\x18\x01 \x01(\v2\x14.qbank.v1.JobSummaryR\asummary\"\xbb\x02\n" +
	"\n" +
	"JobSummary\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x120\n" +
	"\x14total_pages_detected\x18\x03 \x01(\x05R\x12totalPagesDetected\x12,\n" +
	"\x12pages_with_content\x18\x04 \x01(\x05R\x10pagesWithContent\x12#\n" +
	"\rpages_skipped\x18\x05 \x01(\x05R\fpagesSkipped\x12!\n" +
	"\fpages_failed\x18\x06 \x01(\x05R\vpagesFailed\x12)\n" +
	"\x10questions_stored\x18\a \x01(\x05R\x0fquestionsStored\x12+\n" +
	"\x05pages\x18\b \x03(\v2\x15.qbank.v1.PageOutcomeR\x05pages\"\x8d\x01\n" +
	"\vPageOutcome\x12\x1f\n" +
	"\vpage_number\x18\x01 \x01(\x05R\n" +
	"pageNumber\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12/\n" +
	"\x13questions_extracted\x18\x03 \x01(\x05R\x12questionsExtracted\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\"\x96\x02\n" +
	"\x14ListQuestionsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12!\n" +
	"\fsubject_name\x18\x02 \x01(\tR\vsubjectName\x12#\n" +
	"\rquestion_type\x18\x03 \x01(\tR\fquestionType\x12/\n" +
	"\x13question_difficulty\x18\x04 \x01(\tR\x12questionDifficulty\x12\x1d\n" +
	"\n" +
	"class_name\x18\x05 \x01(\tR\tclassName\x12!\n" +
	"\flesson_title\x18\x06 \x01(\tR\vlessonTitle\x12\x14\n" +
	"\x05limit\x18\a \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\b \x01(\x05R\x06offset\"I\n" +
	"\x15ListQuestionsResponse\x120\n" +
	"\tquestions\x18\x01 \x03(\v2\x12.qbank.v1.QuestionR\tquestions\"$\n" +
	"\x12GetQuestionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"E\n" +
	"\x13GetQuestionResponse\x12.\n" +
	"\bquestion\x18\x01 \x01(\v2\x12.qbank.v1.QuestionR\bquestion\"\xd0\x04\n" +
	"\bQuestion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12!\n" +
	"\fsubject_name\x18\x04 \x01(\tR\vsubjectName\x12!\n" +
	"\flesson_title\x18\x05 \x01(\tR\vlessonTitle\x12\x1d\n" +
	"\n" +
	"class_name\x18\x06 \x01(\tR\tclassName\x12&\n" +
	"\x0especialization\x18\a \x01(\tR\x0especialization\x12\x1a\n" +
	"\bquestion\x18\b \x01(\tR\bquestion\x12#\n" +
	"\rquestion_type\x18\t \x01(\tR\fquestionType\x12/\n" +
	"\x13question_difficulty\x18\n" +
	" \x01(\tR\x12questionDifficulty\x12\x1f\n" +
	"\vpage_number\x18\v \x01(\x05R\n" +
	"pageNumber\x12!\n" +
	"\fanswer_steps\x18\f \x01(\tR\vanswerSteps\x12%\n" +
	"\x0ecorrect_answer\x18\r \x01(\tR\rcorrectAnswer\x12\x18\n" +
	"\aoptions\x18\x0e \x03(\tR\aoptions\x12\x1f\n" +
	"\vuploaded_by\x18\x0f \x01(\tR\n" +
	"uploadedBy\x12\x1d\n" +
	"\n" +
	"updated_by\x18\x10 \x01(\tR\tupdatedBy\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x12 \x01(\tR\tupdatedAt\"R\n" +
	"\x16ExportQuestionsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12!\n" +
	"\fsubject_name\x18\x02 \x01(\tR\vsubjectName\"-\n" +
	"\x17ExportQuestionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x90\x01\n" +
	"\x11ExtractionService\x12>\n" +
	"\aExtract\x12\x18.qbank.v1.ExtractRequest\x1a\x19.qbank.v1.ExtractResponse\x12;\n" +
	"\x06GetJob\x12\x17.qbank.v1.GetJobRequest\x1a\x18.qbank.v1.GetJobResponse2\xaf\x01\n" +
	"\x0fQuestionService\x12P\n" +
	"\rListQuestions\x12\x1e.qbank.v1.ListQuestionsRequest\x1a\x1f.qbank.v1.ListQuestionsResponse\x12J\n" +
	"\vGetQuestion\x12\x1c.qbank.v1.GetQuestionRequest\x1a\x1d.qbank.v1.GetQuestionResponse2g\n" +
	"\rExportService\x12V\n" +
	"\x0fExportQuestions\x12 .qbank.v1.ExportQuestionsRequest\x1a!.qbank.v1.ExportQuestionsResponseB5Z3github.com/qbankhq/qbank/gen/proto/qbank/v1;qbankpbb\x06proto3"

var (
	file_qbank_v1_qbank_proto_rawDescOnce sync.Once
	file_qbank_v1_qbank_proto_rawDescData []byte
)

func file_qbank_v1_qbank_proto_rawDescGZIP() []byte {
	file_qbank_v1_qbank_proto_rawDescOnce.Do(func() {
		file_qbank_v1_qbank_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_qbank_v1_qbank_proto_rawDesc), len(file_qbank_v1_qbank_proto_rawDesc)))
	})
	return file_qbank_v1_qbank_proto_rawDescData
}

var file_qbank_v1_qbank_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_qbank_v1_qbank_proto_goTypes = []any{
	(*ExtractRequest)(nil),          // 0: qbank.v1.ExtractRequest
	(*ExtractResponse)(nil),         // 1: qbank.v1.ExtractResponse
	(*GetJobRequest)(nil),           // 2: qbank.v1.GetJobRequest
	(*GetJobResponse)(nil),          // 3: qbank.v1.GetJobResponse
	(*JobSummary)(nil),              // 4: qbank.v1.JobSummary
	(*PageOutcome)(nil),             // 5: qbank.v1.PageOutcome
	(*ListQuestionsRequest)(nil),    // 6: qbank.v1.ListQuestionsRequest
	(*ListQuestionsResponse)(nil),   // 7: qbank.v1.ListQuestionsResponse
	(*GetQuestionRequest)(nil),      // 8: qbank.v1.GetQuestionRequest
	(*GetQuestionResponse)(nil),     // 9: qbank.v1.GetQuestionResponse
	(*Question)(nil),                // 10: qbank.v1.Question
	(*ExportQuestionsRequest)(nil),  // 11: qbank.v1.ExportQuestionsRequest
	(*ExportQuestionsResponse)(nil), // 12: qbank.v1.ExportQuestionsResponse
}
var file_qbank_v1_qbank_proto_depIdxs = []int32{
	4,  // 0: qbank.v1.ExtractResponse.summary:type_name -> qbank.v1.JobSummary
	4,  // 1: qbank.v1.GetJobResponse.summary:type_name -> qbank.v1.JobSummary
	5,  // 2: qbank.v1.JobSummary.pages:type_name -> qbank.v1.PageOutcome
	10, // 3: qbank.v1.ListQuestionsResponse.questions:type_name -> qbank.v1.Question
	10, // 4: qbank.v1.GetQuestionResponse.question:type_name -> qbank.v1.Question
	0,  // 5: qbank.v1.ExtractionService.Extract:input_type -> qbank.v1.ExtractRequest
	2,  // 6: qbank.v1.ExtractionService.GetJob:input_type -> qbank.v1.GetJobRequest
	6,  // 7: qbank.v1.QuestionService.ListQuestions:input_type -> qbank.v1.ListQuestionsRequest
	8,  // 8: qbank.v1.QuestionService.GetQuestion:input_type -> qbank.v1.GetQuestionRequest
	11, // 9: qbank.v1.ExportService.ExportQuestions:input_type -> qbank.v1.ExportQuestionsRequest
	1,  // 10: qbank.v1.ExtractionService.Extract:output_type -> qbank.v1.ExtractResponse
	3,  // 11: qbank.v1.ExtractionService.GetJob:output_type -> qbank.v1.GetJobResponse
	7,  // 12: qbank.v1.QuestionService.ListQuestions:output_type -> qbank.v1.ListQuestionsResponse
	9,  // 13: qbank.v1.QuestionService.GetQuestion:output_type -> qbank.v1.GetQuestionResponse
	12, // 14: qbank.v1.ExportService.ExportQuestions:output_type -> qbank.v1.ExportQuestionsResponse
	10, // [10:15] is the sub-list for method output_type
	5,  // [5:10] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_qbank_v1_qbank_proto_init() }
func file_qbank_v1_qbank_proto_init() {
	if File_qbank_v1_qbank_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_qbank_v1_qbank_proto_rawDesc), len(file_qbank_v1_qbank_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_qbank_v1_qbank_proto_goTypes,
		DependencyIndexes: file_qbank_v1_qbank_proto_depIdxs,
		MessageInfos:      file_qbank_v1_qbank_proto_msgTypes,
	}.Build()
	File_qbank_v1_qbank_proto = out.File
	file_qbank_v1_qbank_proto_goTypes = nil
	file_qbank_v1_qbank_proto_depIdxs = nil
}
