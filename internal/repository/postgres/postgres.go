package postgres

import (
	"gorm.io/gorm"

	"github.com/modelproof/biasradar-api/internal/config"
	"github.com/modelproof/biasradar-api/internal/repository"
)

type postgresRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
	orgRepo  repository.OrganizationRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		writerDB: dbConnections.Writer,
		readerDB: dbConnections.Reader,
		orgRepo:  NewOrganizationRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Organization() repository.OrganizationRepository {
	return r.orgRepo
}
