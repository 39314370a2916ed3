package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Liku-id/wukong-admin-api/internal/api/handler/v1/response"
	"github.com/Liku-id/wukong-admin-api/internal/api/middleware"
	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/pkg/pagination"
)

const defaultPageSize = 10

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	raw, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized(errors.New("not authenticated"))
	}

	userID, ok := raw.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("invalid session"))
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrUnauthorized(fmt.Errorf("unknown user %v", userID))
	}

	return user, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %v", name))
	}

	return uint(id), nil
}

// parsePageQuery reads ?page= (0-based) and ?pageSize= with defaults.
func parsePageQuery(ctx *gin.Context) pagination.Page {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(ctx.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || size < 1 {
		size = defaultPageSize
	}

	return pagination.Page{Current: page, Size: size}
}
