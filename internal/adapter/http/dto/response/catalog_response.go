package response

type ProceduresResponse struct {
	Procedures []string `json:"procedures"`
}

type SurgeonsResponse struct {
	Surgeons []string `json:"surgeons"`
}
