package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	recoerrors "github.com/nutrireco/go-reco-engine/internal/errors"
	"github.com/nutrireco/go-reco-engine/services"
)

// BuildDatasetHandler fetches a registry row range and preprocesses it into a
// named dataset.
// Request Body: services.BuildRequest
func (api *API) BuildDatasetHandler(c *gin.Context) {
	var req services.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if req.Name == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Dataset name is required")
		return
	}
	if req.ServiceID == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Service ID is required")
		return
	}
	if req.StartIdx == 0 && req.EndIdx == 0 {
		req.StartIdx, req.EndIdx = 1, 100
	}

	ds, err := api.engine.BuildDataset(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, recoerrors.ErrDatasetAlreadyExists):
			SendDatasetExistsError(c, req.Name)
		case errors.Is(err, recoerrors.ErrProfileNotFound):
			SendProfileNotFoundError(c, req.Profile)
		case errors.Is(err, recoerrors.ErrInvalidInput):
			SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		case errors.Is(err, recoerrors.ErrFetchFailed):
			SendFetchError(c, err)
		default:
			SendInternalError(c, "dataset build", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Dataset '" + ds.Name + "' created successfully",
		"name":        ds.Name,
		"profile":     ds.Profile,
		"rows":        ds.Features.Len(),
		"total_count": ds.TotalCount,
	})
}

// ListDatasetsHandler lists stored dataset summaries.
func (api *API) ListDatasetsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"datasets": api.engine.ListDatasets()})
}

// GetDatasetHandler returns the summary of one dataset.
func (api *API) GetDatasetHandler(c *gin.Context) {
	name := c.Param("name")
	ds, err := api.engine.GetDataset(name)
	if err != nil {
		SendDatasetNotFoundError(c, name)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":            ds.Name,
		"profile":         ds.Profile,
		"service_id":      ds.ServiceID,
		"start_idx":       ds.StartIdx,
		"end_idx":         ds.EndIdx,
		"rows":            ds.Features.Len(),
		"total_count":     ds.TotalCount,
		"fetched_at":      ds.FetchedAt,
		"keyword_keys":    ds.Features.KeywordKeys,
		"numeric_columns": ds.Features.NumericColumns,
		"meta_columns":    ds.Meta.Columns,
	})
}

// DeleteDatasetHandler removes a dataset from memory and disk.
func (api *API) DeleteDatasetHandler(c *gin.Context) {
	name := c.Param("name")
	if err := api.engine.DeleteDataset(name); err != nil {
		SendDatasetNotFoundError(c, name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dataset '" + name + "' deleted successfully"})
}

// GetDatasetReportHandler returns the diagnostic validation report.
func (api *API) GetDatasetReportHandler(c *gin.Context) {
	name := c.Param("name")
	rep, err := api.engine.ValidateDataset(name)
	if err != nil {
		SendDatasetNotFoundError(c, name)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// exportRequest carries the optional output directory for CSV export.
type exportRequest struct {
	OutDir string `json:"out_dir"`
}

// ExportDatasetHandler writes the dataset's tables as CSV files.
func (api *API) ExportDatasetHandler(c *gin.Context) {
	name := c.Param("name")

	var req exportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			SendInvalidJSONError(c, err)
			return
		}
	}

	outDir, err := api.engine.ExportDataset(name, req.OutDir)
	if err != nil {
		if errors.Is(err, recoerrors.ErrDatasetNotFound) {
			SendDatasetNotFoundError(c, name)
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeExportFailed,
			"Export failed for dataset '"+name+"': "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dataset '" + name + "' exported successfully",
		"out_dir": outDir,
	})
}

// RecommendHandler ranks a dataset against one of its profile's needs.
// Request Body: services.RecommendRequest
func (api *API) RecommendHandler(c *gin.Context) {
	name := c.Param("name")

	var req services.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if req.Need == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Need is required")
		return
	}

	rec, err := api.engine.RecommendByNeed(name, req.Need, req.TopN)
	if err != nil {
		switch {
		case errors.Is(err, recoerrors.ErrDatasetNotFound):
			SendDatasetNotFoundError(c, name)
		case errors.Is(err, recoerrors.ErrUnknownNeed):
			SendUnknownNeedError(c, err)
		default:
			SendInternalError(c, "recommendation", err)
		}
		return
	}

	c.JSON(http.StatusOK, rec)
}
