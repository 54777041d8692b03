package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/serael/catalog/internal/core/port"
)

var _ port.ProductsStorage = (*ProductsRepository)(nil)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

const productColumns = `
	p.id, p.name, p.sku, p.brand, p.category_name, p.category_id,
	p.ean_code, p.description, p.features, p.notes, p.material, p.color,
	p.weight, p.desi, p.width, p.height, p.depth, p.warranty_months,
	p.image_url, p.image_url2, p.image_url3, p.image_url4, p.image_url5,
	p.image_url6,
	p.barcode_trendyol, p.barcode_hepsiburada, p.barcode_n11,
	p.barcode_amazon, p.barcode_gittigidiyor, p.barcode_ciceksepeti,
	p.barcode_pazarama, p.barcode_pttavm, p.barcode_idefix,
	p.barcode_morhipo, p.barcode_teknosa, p.barcode_boyner,
	p.barcode_koctas, p.barcode_evidea, p.barcode_modanisa,
	p.barcode_flo, p.barcode_beymen, p.barcode_lcw, p.barcode_vodafone,
	p.barcode_akakce, p.barcode_list,
	p.archived, p.created_at, p.updated_at,
	c.id, c.name, c.description, c.active, c.created_at, c.updated_at`

const productSelect = `
	SELECT` + productColumns + `
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

// FetchAll returns the whole catalog snapshot with linked categories
// resolved. The engine filters, sorts and pages in memory over one
// such snapshot per request.
func (r ProductsRepository) FetchAll(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.FetchAll"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.sqldb.QueryContext(ctx, productSelect+" ORDER BY p.id;")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ps []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) Find(
	ctx context.Context, id int64,
) (domain.Product, error) {
	const op = "ProductsRepository.Find"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	row := r.sqldb.QueryRowContext(ctx, productSelect+" WHERE p.id = $1;", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf(
				"%s: %w", op, domain.ErrProductNotFound,
			)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Save upserts one record. Bulk mutation writes each id independently
// through this method; there is no batch transaction on purpose.
func (r ProductsRepository) Save(
	ctx context.Context, p domain.Product,
) error {
	const op = "ProductsRepository.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO products (
			id, name, sku, brand, category_name, category_id,
			ean_code, description, features, notes, material, color,
			weight, desi, width, height, depth, warranty_months,
			image_url, image_url2, image_url3, image_url4, image_url5,
			image_url6,
			barcode_trendyol, barcode_hepsiburada, barcode_n11,
			barcode_amazon, barcode_gittigidiyor, barcode_ciceksepeti,
			barcode_pazarama, barcode_pttavm, barcode_idefix,
			barcode_morhipo, barcode_teknosa, barcode_boyner,
			barcode_koctas, barcode_evidea, barcode_modanisa,
			barcode_flo, barcode_beymen, barcode_lcw, barcode_vodafone,
			barcode_akakce, barcode_list,
			archived, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25,
			$26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37,
			$38, $39, $40, $41, $42, $43, $44, $45, $46, $47, $48
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			sku = EXCLUDED.sku,
			brand = EXCLUDED.brand,
			category_name = EXCLUDED.category_name,
			category_id = EXCLUDED.category_id,
			ean_code = EXCLUDED.ean_code,
			description = EXCLUDED.description,
			features = EXCLUDED.features,
			notes = EXCLUDED.notes,
			material = EXCLUDED.material,
			color = EXCLUDED.color,
			weight = EXCLUDED.weight,
			desi = EXCLUDED.desi,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			depth = EXCLUDED.depth,
			warranty_months = EXCLUDED.warranty_months,
			image_url = EXCLUDED.image_url,
			image_url2 = EXCLUDED.image_url2,
			image_url3 = EXCLUDED.image_url3,
			image_url4 = EXCLUDED.image_url4,
			image_url5 = EXCLUDED.image_url5,
			image_url6 = EXCLUDED.image_url6,
			barcode_trendyol = EXCLUDED.barcode_trendyol,
			barcode_hepsiburada = EXCLUDED.barcode_hepsiburada,
			barcode_n11 = EXCLUDED.barcode_n11,
			barcode_amazon = EXCLUDED.barcode_amazon,
			barcode_gittigidiyor = EXCLUDED.barcode_gittigidiyor,
			barcode_ciceksepeti = EXCLUDED.barcode_ciceksepeti,
			barcode_pazarama = EXCLUDED.barcode_pazarama,
			barcode_pttavm = EXCLUDED.barcode_pttavm,
			barcode_idefix = EXCLUDED.barcode_idefix,
			barcode_morhipo = EXCLUDED.barcode_morhipo,
			barcode_teknosa = EXCLUDED.barcode_teknosa,
			barcode_boyner = EXCLUDED.barcode_boyner,
			barcode_koctas = EXCLUDED.barcode_koctas,
			barcode_evidea = EXCLUDED.barcode_evidea,
			barcode_modanisa = EXCLUDED.barcode_modanisa,
			barcode_flo = EXCLUDED.barcode_flo,
			barcode_beymen = EXCLUDED.barcode_beymen,
			barcode_lcw = EXCLUDED.barcode_lcw,
			barcode_vodafone = EXCLUDED.barcode_vodafone,
			barcode_akakce = EXCLUDED.barcode_akakce,
			barcode_list = EXCLUDED.barcode_list,
			archived = EXCLUDED.archived,
			updated_at = EXCLUDED.updated_at;
	`

	var updatedAt sql.NullTime
	if p.UpdatedAt != nil {
		updatedAt = sql.NullTime{Time: *p.UpdatedAt, Valid: true}
	}
	var categoryID sql.NullInt64
	if p.CategoryID != nil {
		categoryID = sql.NullInt64{Int64: *p.CategoryID, Valid: true}
	}

	_, err := r.sqldb.ExecContext(ctx, query,
		p.ID, p.Name, p.SKU, p.Brand, p.CategoryName, categoryID,
		p.EANCode, p.Description, p.Features, p.Notes, p.Material, p.Color,
		p.Weight, p.Desi, p.Width, p.Height, p.Depth, p.WarrantyMonths,
		p.ImageURL, p.ImageURL2, p.ImageURL3, p.ImageURL4, p.ImageURL5,
		p.ImageURL6,
		p.BarcodeTrendyol, p.BarcodeHepsiburada, p.BarcodeN11,
		p.BarcodeAmazon, p.BarcodeGittigidiyor, p.BarcodeCiceksepeti,
		p.BarcodePazarama, p.BarcodePTTAvm, p.BarcodeIdefix,
		p.BarcodeMorhipo, p.BarcodeTeknosa, p.BarcodeBoyner,
		p.BarcodeKoctas, p.BarcodeEvidea, p.BarcodeModanisa,
		p.BarcodeFlo, p.BarcodeBeymen, p.BarcodeLCW, p.BarcodeVodafone,
		p.BarcodeAkakce, p.BarcodeList,
		p.Archived, p.CreatedAt, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete permanently removes the record. A missing id reports
// [domain.ErrProductNotFound].
func (r ProductsRepository) Delete(ctx context.Context, id int64) error {
	const op = "ProductsRepository.Delete"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.sqldb.ExecContext(ctx,
		"DELETE FROM products WHERE id = $1;", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	var categoryID sql.NullInt64
	var updatedAt sql.NullTime
	var cID sql.NullInt64
	var cName, cDescription sql.NullString
	var cActive sql.NullBool
	var cCreatedAt, cUpdatedAt sql.NullTime

	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Brand, &p.CategoryName, &categoryID,
		&p.EANCode, &p.Description, &p.Features, &p.Notes, &p.Material,
		&p.Color,
		&p.Weight, &p.Desi, &p.Width, &p.Height, &p.Depth,
		&p.WarrantyMonths,
		&p.ImageURL, &p.ImageURL2, &p.ImageURL3, &p.ImageURL4,
		&p.ImageURL5, &p.ImageURL6,
		&p.BarcodeTrendyol, &p.BarcodeHepsiburada, &p.BarcodeN11,
		&p.BarcodeAmazon, &p.BarcodeGittigidiyor, &p.BarcodeCiceksepeti,
		&p.BarcodePazarama, &p.BarcodePTTAvm, &p.BarcodeIdefix,
		&p.BarcodeMorhipo, &p.BarcodeTeknosa, &p.BarcodeBoyner,
		&p.BarcodeKoctas, &p.BarcodeEvidea, &p.BarcodeModanisa,
		&p.BarcodeFlo, &p.BarcodeBeymen, &p.BarcodeLCW,
		&p.BarcodeVodafone, &p.BarcodeAkakce, &p.BarcodeList,
		&p.Archived, &p.CreatedAt, &updatedAt,
		&cID, &cName, &cDescription, &cActive, &cCreatedAt, &cUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, err
	}

	if categoryID.Valid {
		p.CategoryID = &categoryID.Int64
	}
	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.Time
	}
	if cID.Valid {
		c := domain.Category{
			ID:          cID.Int64,
			Name:        cName.String,
			Description: cDescription.String,
			Active:      cActive.Bool,
			CreatedAt:   cCreatedAt.Time,
		}
		if cUpdatedAt.Valid {
			c.UpdatedAt = &cUpdatedAt.Time
		}
		p.Category = &c
	}

	return p, nil
}
