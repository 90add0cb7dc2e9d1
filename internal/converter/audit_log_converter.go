package converter

import (
	"medimatch/internal/delivery/dto"
	"medimatch/internal/domain/entity"
)

func AuditLogToActivity(log *entity.AuditLog) *dto.ActivityResponse {
	if log == nil {
		return nil
	}

	return &dto.ActivityResponse{
		ID:        log.ID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

func AuditLogsToActivities(logs []entity.AuditLog) []dto.ActivityResponse {
	responses := make([]dto.ActivityResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToActivity(&logs[i])
	}
	return responses
}
