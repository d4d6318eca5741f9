package api

import (
	"fmt"
	"strconv"

	"space_ships/internal/app/ds"
	"space_ships/internal/app/filter"

	"github.com/gin-gonic/gin"
)

func queryString(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &v
}

func queryInt64(c *gin.Context, key string) (*int64, error) {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, v)
	}
	return &n, nil
}

func queryInt(c *gin.Context, key string) (*int, error) {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, v)
	}
	return &n, nil
}

func queryFloat(c *gin.Context, key string) (*float64, error) {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, v)
	}
	return &f, nil
}

func queryBool(c *gin.Context, key string) (*bool, error) {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, v)
	}
	return &b, nil
}

// filterParams читает параметры фильтрации из query string
func filterParams(c *gin.Context) (filter.Params, error) {
	var (
		p   filter.Params
		err error
	)
	p.Name = queryString(c, "name")
	p.Planet = queryString(c, "planet")
	if v, ok := c.GetQuery("shipType"); ok && v != "" {
		t, err := ds.ParseShipType(v)
		if err != nil {
			return filter.Params{}, err
		}
		p.ShipType = &t
	}
	if p.After, err = queryInt64(c, "after"); err != nil {
		return filter.Params{}, err
	}
	if p.Before, err = queryInt64(c, "before"); err != nil {
		return filter.Params{}, err
	}
	if p.IsUsed, err = queryBool(c, "isUsed"); err != nil {
		return filter.Params{}, err
	}
	if p.MinSpeed, err = queryFloat(c, "minSpeed"); err != nil {
		return filter.Params{}, err
	}
	if p.MaxSpeed, err = queryFloat(c, "maxSpeed"); err != nil {
		return filter.Params{}, err
	}
	if p.MinCrewSize, err = queryInt(c, "minCrewSize"); err != nil {
		return filter.Params{}, err
	}
	if p.MaxCrewSize, err = queryInt(c, "maxCrewSize"); err != nil {
		return filter.Params{}, err
	}
	if p.MinRating, err = queryFloat(c, "minRating"); err != nil {
		return filter.Params{}, err
	}
	if p.MaxRating, err = queryFloat(c, "maxRating"); err != nil {
		return filter.Params{}, err
	}
	return p, nil
}

// pageParams - order, pageNumber, pageSize
func pageParams(c *gin.Context, defaultSize int) (ds.Page, error) {
	page := ds.Page{Number: 0, Size: defaultSize, Order: ds.OrderID}
	if v := c.Query("order"); v != "" {
		order, err := ds.ParseShipOrder(v)
		if err != nil {
			return ds.Page{}, err
		}
		page.Order = order
	}
	number, err := queryInt(c, "pageNumber")
	if err != nil {
		return ds.Page{}, err
	}
	if number != nil {
		page.Number = *number
	}
	size, err := queryInt(c, "pageSize")
	if err != nil {
		return ds.Page{}, err
	}
	if size != nil {
		page.Size = *size
	}
	return page, nil
}
