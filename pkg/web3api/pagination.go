package web3api

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/team-magi/web3game-go/internal/constants"
)

// Parameter names used for paging.
const (
	ParamLimit  = "limit"
	ParamOffset = "offset"
	ParamCursor = "cursor"
)

// NextParams computes the parameters for the page after the one described by
// info. The boolean is false when there is no further page; params is then
// returned unchanged.
//
// A non-empty cursor always wins. Without one, the offset advances by one page
// of "limit" items (500 when no limit was passed) while the total exceeds the
// items covered so far.
func NextParams(info *PageInfo, params Params) (Params, bool) {
	if info == nil || info.PageSize <= 0 || info.Total == 0 || info.Page == nil {
		return params, false
	}

	page := *info.Page

	if info.Cursor != "" {
		if current, ok := params[ParamCursor]; ok && fmt.Sprint(current) == info.Cursor {
			return params, false
		}

		return params.With(ParamCursor, info.Cursor), true
	}

	if info.Total <= info.PageSize*(page+1) {
		return params, false
	}

	offset := (page + 1) * pageLimit(params)

	if current, ok := toInt(params[ParamOffset]); ok && current == offset {
		return params, false
	}

	return params.With(ParamOffset, offset), true
}

func pageLimit(params Params) int {
	limit, ok := toInt(params[ParamLimit])
	if !ok || limit == 0 {
		return constants.DefaultPageLimit
	}

	return limit
}

// toInt converts the numeric shapes a bag value can take, including numeric
// strings from the command line, to int.
func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}

		return int(n), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	return int(f), true
}
