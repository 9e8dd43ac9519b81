package get_instructor_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/DSM-CoreService/internal/domain"
	"github.com/m04kA/DSM-CoreService/internal/service/bookings/models"
)

// parseQuery разбирает query-параметры фильтрации в запрос сервиса
// Поддерживаются: startDate, endDate (YYYY-MM-DD), status, includeInactive
func parseQuery(instructorID, userID int64, query url.Values) (*models.GetInstructorBookingsRequest, error) {
	req := &models.GetInstructorBookingsRequest{
		InstructorID: instructorID,
		UserID:       userID,
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
