package service_test

import (
	"errors"
	"testing"

	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/mocks"
	"org-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockOrgRepo    *mocks.MockOrganizationRepositoryInterface
	mockAdminRepo  *mocks.MockAdminRepositoryInterface
	mockPartitions *mocks.MockPartitionRepositoryInterface
	orgService     *service.OrganizationService
	validator      *validator.Validate
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockAdminRepo = mocks.NewMockAdminRepositoryInterface(suite.ctrl)
	suite.mockPartitions = mocks.NewMockPartitionRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.orgService = service.NewOrganizationService(
		suite.mockOrgRepo, suite.mockAdminRepo, suite.mockPartitions, suite.validator)
}

func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) existingOrg() *models.Organization {
	return &models.Organization{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Acme Corp",
		PartitionKey: "org_acme_corp",
		AdminID:      uuid.New(),
		AdminEmail:   "admin@acme.com",
	}
}

func (suite *OrganizationServiceTestSuite) TestCreate_Success() {
	req := &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.com",
		Password:         "s3cret-pass",
	}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_acme_corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().GetByEmail("admin@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(admin *models.Admin) error {
		admin.ID = uuid.New()
		assert.Equal(suite.T(), "admin@acme.com", admin.Email)
		assert.Equal(suite.T(), "Acme Corp", admin.OrganizationName)
		assert.Equal(suite.T(), "org_acme_corp", admin.PartitionKey)
		assert.NotEqual(suite.T(), "s3cret-pass", admin.HashedPassword)
		return nil
	})
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		org.ID = uuid.New()
		assert.Equal(suite.T(), "Acme Corp", org.Name)
		assert.Equal(suite.T(), "org_acme_corp", org.PartitionKey)
		return nil
	})
	suite.mockPartitions.EXPECT().Create("org_acme_corp").Return(nil)

	resp, err := suite.orgService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "Acme Corp", resp.Organization.OrganizationName)
	assert.Equal(suite.T(), "org_acme_corp", resp.Organization.PartitionKey)
	assert.Equal(suite.T(), "admin@acme.com", resp.Admin.Email)
	assert.Equal(suite.T(), "org_acme_corp", resp.Admin.PartitionKey)
}

func (suite *OrganizationServiceTestSuite) TestCreate_TrimsName() {
	req := &service.CreateOrganizationRequest{
		OrganizationName: "  Acme Corp  ",
		Email:            "admin@acme.com",
		Password:         "s3cret-pass",
	}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_acme_corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().GetByEmail("admin@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(admin *models.Admin) error {
		admin.ID = uuid.New()
		return nil
	})
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockPartitions.EXPECT().Create("org_acme_corp").Return(nil)

	resp, err := suite.orgService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Corp", resp.Organization.OrganizationName)
}

func (suite *OrganizationServiceTestSuite) TestCreate_NameConflict() {
	req := &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.com",
		Password:         "s3cret-pass",
	}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(suite.existingOrg(), nil)

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *OrganizationServiceTestSuite) TestCreate_PartitionKeyCollision() {
	// "Acme-Corp" is a new name but normalizes to the same partition key
	// as the existing "Acme Corp".
	req := &service.CreateOrganizationRequest{
		OrganizationName: "Acme-Corp",
		Email:            "other@acme.com",
		Password:         "s3cret-pass",
	}

	suite.mockOrgRepo.EXPECT().GetByName("Acme-Corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_acme_corp").Return(suite.existingOrg(), nil)

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *OrganizationServiceTestSuite) TestCreate_EmailConflict() {
	req := &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.com",
		Password:         "s3cret-pass",
	}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_acme_corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().GetByEmail("admin@acme.com").Return(&models.Admin{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "admin@acme.com",
	}, nil)

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminExists)
}

func (suite *OrganizationServiceTestSuite) TestCreate_UniqueIndexRace() {
	// The pre-checks pass but the insert loses a race; the store's
	// conflict error must come back unchanged.
	req := &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.com",
		Password:         "s3cret-pass",
	}

	adminID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_acme_corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().GetByEmail("admin@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(admin *models.Admin) error {
		admin.ID = adminID
		return nil
	})
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).Return(apperrors.ErrOrganizationExists)
	suite.mockAdminRepo.EXPECT().Delete(adminID).Return(nil)

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *OrganizationServiceTestSuite) TestCreate_PartitionFailureRollsBack() {
	req := &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.com",
		Password:         "s3cret-pass",
	}

	adminID := uuid.New()
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_acme_corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().GetByEmail("admin@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(admin *models.Admin) error {
		admin.ID = adminID
		return nil
	})
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		org.ID = orgID
		return nil
	})
	suite.mockPartitions.EXPECT().Create("org_acme_corp").Return(errors.New("ddl failed"))
	suite.mockOrgRepo.EXPECT().Delete(orgID).Return(nil)
	suite.mockAdminRepo.EXPECT().Delete(adminID).Return(nil)

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsPartialFailure(err))
	assert.Contains(suite.T(), err.Error(), "failed to provision partition")
}

func (suite *OrganizationServiceTestSuite) TestCreate_FailedRollbackIsPartialFailure() {
	req := &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.com",
		Password:         "s3cret-pass",
	}

	adminID := uuid.New()
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_acme_corp").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().GetByEmail("admin@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(admin *models.Admin) error {
		admin.ID = adminID
		return nil
	})
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		org.ID = orgID
		return nil
	})
	suite.mockPartitions.EXPECT().Create("org_acme_corp").Return(errors.New("ddl failed"))
	suite.mockOrgRepo.EXPECT().Delete(orgID).Return(errors.New("delete failed"))
	suite.mockAdminRepo.EXPECT().Delete(adminID).Return(nil)

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPartialFailure(err))
}

func (suite *OrganizationServiceTestSuite) TestCreate_ValidationError() {
	req := &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "not-an-email",
		Password:         "s3cret-pass",
	}

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *OrganizationServiceTestSuite) TestCreate_ShortPassword() {
	req := &service.CreateOrganizationRequest{
		OrganizationName: "Acme Corp",
		Email:            "admin@acme.com",
		Password:         "short",
	}

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *OrganizationServiceTestSuite) TestCreate_BlankName() {
	req := &service.CreateOrganizationRequest{
		OrganizationName: "   ",
		Email:            "admin@acme.com",
		Password:         "s3cret-pass",
	}

	resp, err := suite.orgService.Create(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *OrganizationServiceTestSuite) TestGet_Success() {
	org := suite.existingOrg()
	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)

	resp, err := suite.orgService.Get("Acme Corp")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Corp", resp.OrganizationName)
	assert.Equal(suite.T(), "org_acme_corp", resp.PartitionKey)
	assert.Equal(suite.T(), "admin@acme.com", resp.AdminEmail)
}

func (suite *OrganizationServiceTestSuite) TestGet_NotFound() {
	suite.mockOrgRepo.EXPECT().GetByName("Ghost Org").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.orgService.Get("Ghost Org")

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *OrganizationServiceTestSuite) TestUpdate_Rename_Success() {
	org := suite.existingOrg()
	admin := &models.Admin{
		BaseModel:        models.BaseModel{ID: org.AdminID},
		Email:            "admin@acme.com",
		OrganizationName: "Acme Corp",
		PartitionKey:     "org_acme_corp",
	}
	newName := "Globex Inc"
	req := &service.UpdateOrganizationRequest{NewOrganizationName: &newName}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockAdminRepo.EXPECT().GetByID(org.AdminID).Return(admin, nil)
	suite.mockOrgRepo.EXPECT().GetByName("Globex Inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_globex_inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockPartitions.EXPECT().Rename("org_acme_corp", "org_globex_inc").Return(nil)
	suite.mockAdminRepo.EXPECT().Update(admin).Return(nil)
	suite.mockOrgRepo.EXPECT().Update(org).Return(nil)

	resp, err := suite.orgService.Update("Acme Corp", org.AdminID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Globex Inc", resp.OrganizationName)
	assert.Equal(suite.T(), "org_globex_inc", resp.PartitionKey)
	assert.Equal(suite.T(), "Globex Inc", admin.OrganizationName)
	assert.Equal(suite.T(), "org_globex_inc", admin.PartitionKey)
}

func (suite *OrganizationServiceTestSuite) TestUpdate_SameNameSkipsPartitionMove() {
	org := suite.existingOrg()
	admin := &models.Admin{
		BaseModel:        models.BaseModel{ID: org.AdminID},
		Email:            "admin@acme.com",
		OrganizationName: "Acme Corp",
		PartitionKey:     "org_acme_corp",
	}
	sameName := "Acme Corp"
	req := &service.UpdateOrganizationRequest{NewOrganizationName: &sameName}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockAdminRepo.EXPECT().GetByID(org.AdminID).Return(admin, nil)
	suite.mockAdminRepo.EXPECT().Update(admin).Return(nil)
	suite.mockOrgRepo.EXPECT().Update(org).Return(nil)

	resp, err := suite.orgService.Update("Acme Corp", org.AdminID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "org_acme_corp", resp.PartitionKey)
}

func (suite *OrganizationServiceTestSuite) TestUpdate_EmailAndPassword_Success() {
	org := suite.existingOrg()
	admin := &models.Admin{
		BaseModel:        models.BaseModel{ID: org.AdminID},
		Email:            "admin@acme.com",
		HashedPassword:   "old-hash",
		OrganizationName: "Acme Corp",
		PartitionKey:     "org_acme_corp",
	}
	newEmail := "new@acme.com"
	newPassword := "brand-new-pass"
	req := &service.UpdateOrganizationRequest{Email: &newEmail, Password: &newPassword}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockAdminRepo.EXPECT().GetByID(org.AdminID).Return(admin, nil)
	suite.mockAdminRepo.EXPECT().GetByEmail("new@acme.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAdminRepo.EXPECT().Update(admin).Return(nil)
	suite.mockOrgRepo.EXPECT().Update(org).Return(nil)

	resp, err := suite.orgService.Update("Acme Corp", org.AdminID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new@acme.com", resp.AdminEmail)
	assert.Equal(suite.T(), "new@acme.com", admin.Email)
	assert.NotEqual(suite.T(), "old-hash", admin.HashedPassword)
	assert.NotEqual(suite.T(), "brand-new-pass", admin.HashedPassword)
}

func (suite *OrganizationServiceTestSuite) TestUpdate_Forbidden() {
	org := suite.existingOrg()
	newName := "Globex Inc"
	req := &service.UpdateOrganizationRequest{NewOrganizationName: &newName}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)

	resp, err := suite.orgService.Update("Acme Corp", uuid.New(), req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationAdmin)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *OrganizationServiceTestSuite) TestUpdate_NotFound() {
	newName := "Globex Inc"
	req := &service.UpdateOrganizationRequest{NewOrganizationName: &newName}

	suite.mockOrgRepo.EXPECT().GetByName("Ghost Org").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.orgService.Update("Ghost Org", uuid.New(), req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *OrganizationServiceTestSuite) TestUpdate_RenameTargetTaken() {
	org := suite.existingOrg()
	admin := &models.Admin{
		BaseModel:        models.BaseModel{ID: org.AdminID},
		Email:            "admin@acme.com",
		OrganizationName: "Acme Corp",
		PartitionKey:     "org_acme_corp",
	}
	newName := "Globex Inc"
	req := &service.UpdateOrganizationRequest{NewOrganizationName: &newName}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockAdminRepo.EXPECT().GetByID(org.AdminID).Return(admin, nil)
	suite.mockOrgRepo.EXPECT().GetByName("Globex Inc").Return(&models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Globex Inc",
	}, nil)

	resp, err := suite.orgService.Update("Acme Corp", org.AdminID, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *OrganizationServiceTestSuite) TestUpdate_EmailTakenByOtherAdmin() {
	org := suite.existingOrg()
	admin := &models.Admin{
		BaseModel:        models.BaseModel{ID: org.AdminID},
		Email:            "admin@acme.com",
		OrganizationName: "Acme Corp",
		PartitionKey:     "org_acme_corp",
	}
	newEmail := "taken@other.com"
	req := &service.UpdateOrganizationRequest{Email: &newEmail}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockAdminRepo.EXPECT().GetByID(org.AdminID).Return(admin, nil)
	suite.mockAdminRepo.EXPECT().GetByEmail("taken@other.com").Return(&models.Admin{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "taken@other.com",
	}, nil)

	resp, err := suite.orgService.Update("Acme Corp", org.AdminID, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminExists)
}

func (suite *OrganizationServiceTestSuite) TestUpdate_RecordFailureRevertsPartitionMove() {
	org := suite.existingOrg()
	admin := &models.Admin{
		BaseModel:        models.BaseModel{ID: org.AdminID},
		Email:            "admin@acme.com",
		OrganizationName: "Acme Corp",
		PartitionKey:     "org_acme_corp",
	}
	newName := "Globex Inc"
	req := &service.UpdateOrganizationRequest{NewOrganizationName: &newName}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockAdminRepo.EXPECT().GetByID(org.AdminID).Return(admin, nil)
	suite.mockOrgRepo.EXPECT().GetByName("Globex Inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_globex_inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockPartitions.EXPECT().Rename("org_acme_corp", "org_globex_inc").Return(nil)
	suite.mockAdminRepo.EXPECT().Update(admin).Return(errors.New("update failed"))
	suite.mockPartitions.EXPECT().Rename("org_globex_inc", "org_acme_corp").Return(nil)

	resp, err := suite.orgService.Update("Acme Corp", org.AdminID, req)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsPartialFailure(err))
}

func (suite *OrganizationServiceTestSuite) TestUpdate_FailedRevertIsPartialFailure() {
	org := suite.existingOrg()
	admin := &models.Admin{
		BaseModel:        models.BaseModel{ID: org.AdminID},
		Email:            "admin@acme.com",
		OrganizationName: "Acme Corp",
		PartitionKey:     "org_acme_corp",
	}
	newName := "Globex Inc"
	req := &service.UpdateOrganizationRequest{NewOrganizationName: &newName}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockAdminRepo.EXPECT().GetByID(org.AdminID).Return(admin, nil)
	suite.mockOrgRepo.EXPECT().GetByName("Globex Inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_globex_inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockPartitions.EXPECT().Rename("org_acme_corp", "org_globex_inc").Return(nil)
	suite.mockAdminRepo.EXPECT().Update(admin).Return(errors.New("update failed"))
	suite.mockPartitions.EXPECT().Rename("org_globex_inc", "org_acme_corp").Return(errors.New("revert failed"))

	resp, err := suite.orgService.Update("Acme Corp", org.AdminID, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPartialFailure(err))
}

func (suite *OrganizationServiceTestSuite) TestUpdate_OrgRecordFailureRestoresAdmin() {
	org := suite.existingOrg()
	admin := &models.Admin{
		BaseModel:        models.BaseModel{ID: org.AdminID},
		Email:            "admin@acme.com",
		OrganizationName: "Acme Corp",
		PartitionKey:     "org_acme_corp",
	}
	newName := "Globex Inc"
	req := &service.UpdateOrganizationRequest{NewOrganizationName: &newName}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockAdminRepo.EXPECT().GetByID(org.AdminID).Return(admin, nil)
	suite.mockOrgRepo.EXPECT().GetByName("Globex Inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_globex_inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockPartitions.EXPECT().Rename("org_acme_corp", "org_globex_inc").Return(nil)
	gomock.InOrder(
		suite.mockAdminRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *models.Admin) error {
			assert.Equal(suite.T(), "Globex Inc", a.OrganizationName)
			assert.Equal(suite.T(), "org_globex_inc", a.PartitionKey)
			return nil
		}),
		suite.mockOrgRepo.EXPECT().Update(org).Return(errors.New("update failed")),
		suite.mockAdminRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *models.Admin) error {
			assert.Equal(suite.T(), "Acme Corp", a.OrganizationName)
			assert.Equal(suite.T(), "org_acme_corp", a.PartitionKey)
			return nil
		}),
		suite.mockPartitions.EXPECT().Rename("org_globex_inc", "org_acme_corp").Return(nil),
	)

	resp, err := suite.orgService.Update("Acme Corp", org.AdminID, req)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsPartialFailure(err))
}

func (suite *OrganizationServiceTestSuite) TestUpdate_FailedAdminRestoreIsPartialFailure() {
	org := suite.existingOrg()
	admin := &models.Admin{
		BaseModel:        models.BaseModel{ID: org.AdminID},
		Email:            "admin@acme.com",
		OrganizationName: "Acme Corp",
		PartitionKey:     "org_acme_corp",
	}
	newName := "Globex Inc"
	req := &service.UpdateOrganizationRequest{NewOrganizationName: &newName}

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockAdminRepo.EXPECT().GetByID(org.AdminID).Return(admin, nil)
	suite.mockOrgRepo.EXPECT().GetByName("Globex Inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByPartitionKey("org_globex_inc").Return(nil, gorm.ErrRecordNotFound)
	suite.mockPartitions.EXPECT().Rename("org_acme_corp", "org_globex_inc").Return(nil)
	gomock.InOrder(
		suite.mockAdminRepo.EXPECT().Update(gomock.Any()).Return(nil),
		suite.mockOrgRepo.EXPECT().Update(org).Return(errors.New("update failed")),
		suite.mockAdminRepo.EXPECT().Update(gomock.Any()).Return(errors.New("restore failed")),
	)

	resp, err := suite.orgService.Update("Acme Corp", org.AdminID, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsPartialFailure(err))
}

func (suite *OrganizationServiceTestSuite) TestDelete_Success() {
	org := suite.existingOrg()

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockPartitions.EXPECT().Drop("org_acme_corp").Return(nil)
	suite.mockOrgRepo.EXPECT().Delete(org.ID).Return(nil)
	suite.mockAdminRepo.EXPECT().Delete(org.AdminID).Return(nil)

	err := suite.orgService.Delete("Acme Corp", org.AdminID)

	assert.NoError(suite.T(), err)
}

func (suite *OrganizationServiceTestSuite) TestDelete_Forbidden() {
	org := suite.existingOrg()

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)

	err := suite.orgService.Delete("Acme Corp", uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationAdmin)
}

func (suite *OrganizationServiceTestSuite) TestDelete_NotFound() {
	suite.mockOrgRepo.EXPECT().GetByName("Ghost Org").Return(nil, gorm.ErrRecordNotFound)

	err := suite.orgService.Delete("Ghost Org", uuid.New())

	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *OrganizationServiceTestSuite) TestDelete_RecordRemovalFailureIsPartialFailure() {
	org := suite.existingOrg()

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockPartitions.EXPECT().Drop("org_acme_corp").Return(nil)
	suite.mockOrgRepo.EXPECT().Delete(org.ID).Return(errors.New("delete failed"))

	err := suite.orgService.Delete("Acme Corp", org.AdminID)

	assert.True(suite.T(), apperrors.IsPartialFailure(err))
}

func (suite *OrganizationServiceTestSuite) TestDelete_PartitionDropFailureLeavesRecords() {
	org := suite.existingOrg()

	suite.mockOrgRepo.EXPECT().GetByName("Acme Corp").Return(org, nil)
	suite.mockPartitions.EXPECT().Drop("org_acme_corp").Return(errors.New("ddl failed"))

	err := suite.orgService.Delete("Acme Corp", org.AdminID)

	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsPartialFailure(err))
	assert.Contains(suite.T(), err.Error(), "failed to drop partition")
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
