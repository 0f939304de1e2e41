package main

import (
	"fmt"
	"net/http"

	"github.com/jobsignal/jobsignal/jobmod"

	"github.com/labstack/echo/v4"
)

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
}

func (srv *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var errorMessage string
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		errorMessage = fmt.Sprintf("%s", he.Message)
	}
	if code >= 500 {
		srv.logger.Warn("sieve-http-internal-error", "err", err)
	}
	c.JSON(code, GenericStatus{Status: "error", Daemon: "sieve", Message: errorMessage})
}

func (srv *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(200, GenericStatus{Status: "ok", Daemon: "sieve"})
}

type verifyResponse struct {
	Result  *jobmod.VerificationResult `json:"result"`
	Summary string                     `json:"summary"`
}

func (srv *Server) HandleVerifyJob(c echo.Context) error {
	var sub jobmod.JobSubmission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to parse submission body")
	}

	res, err := srv.engine.VerifyJob(c.Request().Context(), sub)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(200, verifyResponse{
		Result:  res,
		Summary: jobmod.GenerateVerificationSummary(res),
	})
}

type companyFlagsResponse struct {
	CompanyID string   `json:"companyId"`
	Flags     []string `json:"flags"`
}

func (srv *Server) HandleCompanyFlags(c echo.Context) error {
	companyID := c.Param("companyID")
	flags, err := srv.engine.Flags.Get(c.Request().Context(), companyID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to read flag history")
	}
	return c.JSON(200, companyFlagsResponse{CompanyID: companyID, Flags: flags})
}

func (srv *Server) HandlePurgeCompanyCache(c echo.Context) error {
	companyID := c.Param("companyID")
	if err := srv.engine.PurgeCompanyCaches(c.Request().Context(), companyID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to purge company cache")
	}
	return c.JSON(200, GenericStatus{Status: "ok", Daemon: "sieve"})
}
