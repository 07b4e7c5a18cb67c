package routes

import (
	"fundtracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContractors  = "/contractors"
	PathProjects     = "/projects"
	PathIssues       = "/issues"
	PathRatings      = "/ratings"
	PathProgress     = "/progress"
	PathMaterials    = "/materials"
	PathCertificates = "/certificates"
	PathSkills       = "/skills"
	PathAudit        = "/audit-logs"
	PathUsers        = "/users"
)

func addFundTrackerRoutes(
	rg *gin.RouterGroup,
	contractorHandler *handlers.ContractorHandler,
	projectHandler *handlers.ProjectHandler,
	issueHandler *handlers.IssueHandler,
	ratingHandler *handlers.RatingHandler,
	progressHandler *handlers.ProgressHandler,
	materialHandler *handlers.MaterialHandler,
	qualificationHandler *handlers.QualificationHandler,
	auditHandler *handlers.AuditHandler,
	userHandler *handlers.UserHandler,
) {
	contractors := rg.Group(PathContractors)
	{
		contractors.POST("", contractorHandler.Register)
		contractors.GET("/suspended", contractorHandler.ListSuspended)
		contractors.GET("/:id", contractorHandler.GetByID)
		contractors.GET("/:id/eligibility", contractorHandler.CheckEligibility)
		contractors.GET("/:id/ratings", ratingHandler.ListByContractor)
		contractors.POST("/:id/reinstate", contractorHandler.Reinstate)
		contractors.POST("/:id/certificates", qualificationHandler.AddCertificate)
		contractors.GET("/:id/certificates", qualificationHandler.ListCertificates)
		contractors.POST("/:id/skills", qualificationHandler.AddSkill)
		contractors.GET("/:id/skills", qualificationHandler.ListSkills)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.Create)
		projects.GET("/:id", projectHandler.GetByID)
		projects.PATCH("/:id", projectHandler.Update)
		projects.POST("/:id/assign", projectHandler.AssignContractor)
		projects.GET("/:id/issues", issueHandler.ListByProject)
		projects.GET("/:id/progress", progressHandler.ListByProject)
		projects.GET("/:id/materials", materialHandler.ListByProject)
	}

	issues := rg.Group(PathIssues)
	{
		issues.POST("", issueHandler.Report)
		issues.GET("/:id", issueHandler.GetByID)
		issues.POST("/:id/evidence", issueHandler.AddEvidence)
		issues.POST("/:id/verify", issueHandler.Verify)
		issues.POST("/:id/forgive", issueHandler.Forgive)
		issues.POST("/:id/penalize", issueHandler.Penalize)
		issues.POST("/:id/resolve", issueHandler.Resolve)
	}

	ratings := rg.Group(PathRatings)
	{
		ratings.POST("", ratingHandler.Create)
		ratings.GET("/:id", ratingHandler.GetByID)
		ratings.POST("/:id/evidence", ratingHandler.RecordEvidence)
		ratings.POST("/:id/verify", ratingHandler.VerifyAndApply)
	}

	progress := rg.Group(PathProgress)
	{
		progress.POST("", progressHandler.Submit)
		progress.GET("/pending", progressHandler.ListPending)
		progress.GET("/:id", progressHandler.GetByID)
		progress.POST("/:id/approve", progressHandler.Approve)
		progress.POST("/:id/reject", progressHandler.Reject)
		progress.POST("/:id/images", progressHandler.AddImage)
	}

	materials := rg.Group(PathMaterials)
	{
		materials.POST("", materialHandler.Create)
		materials.GET("/:id", materialHandler.GetByID)
		materials.PATCH("/:id", materialHandler.Update)
		materials.POST("/:id/verify", materialHandler.Verify)
		materials.POST("/:id/payments", materialHandler.RecordPayment)
		materials.GET("/:id/payments", materialHandler.ListPayments)
	}

	certificates := rg.Group(PathCertificates)
	{
		certificates.POST("/:id/verify", qualificationHandler.VerifyCertificate)
	}

	skills := rg.Group(PathSkills)
	{
		skills.POST("/:id/verify", qualificationHandler.VerifySkill)
	}

	audit := rg.Group(PathAudit)
	{
		audit.GET("", auditHandler.List)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.Register)
		users.GET("/:id", userHandler.GetByID)
	}
}
