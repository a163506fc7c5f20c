// Package id defines the IDService gRPC API. Messages are plain structs
// carried by the JSON codec registered in codec.go.
package id

type GenerateIDRequest struct {
	Kind string `json:"kind"`
}

type GenerateIDResponse struct {
	Id string `json:"id"`
}

type GenerateBatchIDsRequest struct {
	Kind  string `json:"kind"`
	Count int32  `json:"count"`
}

type GenerateBatchIDsResponse struct {
	Ids []string `json:"ids"`
}

type ValidateIDRequest struct {
	Kind string `json:"kind"`
	Id   string `json:"id"`
}

type ValidateIDResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type ParseIDRequest struct {
	Kind string `json:"kind"`
	Id   string `json:"id"`
}

type ParseIDResponse struct {
	Valid        bool   `json:"valid"`
	Canonical    string `json:"canonical,omitempty"`
	Width        int32  `json:"width,omitempty"`
	HexLength    int32  `json:"hex_length,omitempty"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`

	// Strategy fields, set only for strategies that encode them.
	TimestampMs   int64  `json:"timestamp_ms,omitempty"`
	MachineId     int64  `json:"machine_id,omitempty"`
	Sequence      int64  `json:"sequence,omitempty"`
	UuidVersion   int32  `json:"uuid_version,omitempty"`
	UuidVariant   string `json:"uuid_variant,omitempty"`
	Tag           uint32 `json:"tag,omitempty"`
	RandomPayload string `json:"random_payload,omitempty"`
}

type ListKindsRequest struct{}

type Kind struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
	Width    int32  `json:"width"`
}

type ListKindsResponse struct {
	Kinds []*Kind `json:"kinds"`
}

func (r *GenerateIDRequest) GetKind() string {
	if r == nil {
		return ""
	}
	return r.Kind
}

func (r *GenerateBatchIDsRequest) GetKind() string {
	if r == nil {
		return ""
	}
	return r.Kind
}

func (r *GenerateBatchIDsRequest) GetCount() int32 {
	if r == nil {
		return 0
	}
	return r.Count
}

func (r *ValidateIDRequest) GetKind() string {
	if r == nil {
		return ""
	}
	return r.Kind
}

func (r *ValidateIDRequest) GetId() string {
	if r == nil {
		return ""
	}
	return r.Id
}

func (r *ParseIDRequest) GetKind() string {
	if r == nil {
		return ""
	}
	return r.Kind
}

func (r *ParseIDRequest) GetId() string {
	if r == nil {
		return ""
	}
	return r.Id
}
