package request

import (
	"fmt"
	"strconv"

	"apothecary/internal/pkg/page"

	"github.com/gin-gonic/gin"
)

// ParsePageable reads paging parameters from the query string. Offset mode
// (`offset`/`limit`) wins over page-index mode (`page`/`size`); repeated
// `sort=field,direction` parameters order the result. With no parameters at
// all the result is nil, which the store treats as a single full page.
func ParsePageable(c *gin.Context) (*page.Pageable, error) {
	sort, err := parseSortParams(c)
	if err != nil {
		return nil, err
	}

	options, err := parsePageOptions(c)
	if err != nil {
		return nil, err
	}

	if options == nil {
		if sort == nil {
			return nil, nil
		}
		options = page.PageQuery{Index: 0, PerPage: page.DefaultPerPage}
	}

	return &page.Pageable{Options: options, Sort: sort}, nil
}

func parsePageOptions(c *gin.Context) (page.Options, error) {
	if offsetStr, hasOffset := c.GetQuery("offset"); hasOffset {
		offset, err := parseUintParam("offset", offsetStr)
		if err != nil {
			return nil, err
		}
		limit, err := parseUintParam("limit", c.DefaultQuery("limit", strconv.Itoa(page.DefaultPerPage)))
		if err != nil {
			return nil, err
		}
		return page.OffsetLimit{Offset: offset, Limit: limit}, nil
	}

	indexStr, hasIndex := c.GetQuery("page")
	sizeStr, hasSize := c.GetQuery("size")
	if !hasIndex && !hasSize {
		return nil, nil
	}

	opts := page.PageQuery{Index: 0, PerPage: page.DefaultPerPage}
	if hasIndex {
		index, err := parseUintParam("page", indexStr)
		if err != nil {
			return nil, err
		}
		opts.Index = index
	}
	if hasSize {
		size, err := parseUintParam("size", sizeStr)
		if err != nil {
			return nil, err
		}
		opts.PerPage = size
	}
	return opts, nil
}

func parseSortParams(c *gin.Context) (*page.Sort, error) {
	values := c.QueryArray("sort")
	if len(values) == 0 {
		return nil, nil
	}

	sort, err := page.ParseSort(values)
	if err != nil {
		return nil, err
	}
	return sort, nil
}

func parseUintParam(name, value string) (uint64, error) {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, value)
	}
	return v, nil
}
