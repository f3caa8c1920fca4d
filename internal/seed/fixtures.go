package seed

import "langnghe/internal/models"

func ptr[T any](v T) *T { return &v }

var categories = []models.Category{
	{Name: "Gốm sứ", Slug: "gom-su", Image: "https://images.unsplash.com/photo-1610701596007-11502861dcfa"},
	{Name: "Mây tre đan", Slug: "may-tre-dan", Image: "https://images.unsplash.com/photo-1605015208469-d7e4522bee5d"},
	{Name: "Lụa tơ tằm", Slug: "lua-to-tam", Image: "https://images.unsplash.com/photo-1604847078379-ea7a2e3fface"},
	{Name: "Đồ gỗ mỹ nghệ", Slug: "do-go-my-nghe", Image: "https://images.unsplash.com/photo-1533276441486-4e77d234e21f"},
	{Name: "Thêu ren", Slug: "theu-ren", Image: "https://images.unsplash.com/photo-1621072156002-e2fccdc0b176"},
}

var artisans = []models.Artisan{
	{
		Name:        "Nguyễn Văn Tuấn",
		Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
		Village:     "Làng gốm Bát Tràng",
		Description: "Nghệ nhân với hơn 30 năm kinh nghiệm trong nghề gốm, chuyên về kỹ thuật vẽ men ngọc cổ truyền.",
	},
	{
		Name:        "Trần Thị Mai",
		Image:       "https://images.unsplash.com/photo-1534751516642-a1af1ef26a56",
		Village:     "Làng lụa Vạn Phúc",
		Description: "Nghệ nhân ưu tú chuyên về nghề dệt lụa và thêu thủ công, đã có nhiều tác phẩm được trưng bày tại các bảo tàng.",
	},
	{
		Name:        "Lê Văn Hùng",
		Image:       "https://images.unsplash.com/photo-1566753323558-f4e0952af115",
		Village:     "Làng mây tre đan Phú Vinh",
		Description: "Nghệ nhân gắn bó với nghề đan lát truyền thống hơn 40 năm, sáng tạo nhiều mẫu sản phẩm độc đáo và hiện đại.",
	},
}

// productFixture references its category by slug and its artisan by index
// into artisans (-1 for none); ids are resolved at insert time.
type productFixture struct {
	product      models.Product
	categorySlug string
	artisan      int
}

var products = []productFixture{
	{
		categorySlug: "gom-su",
		artisan:      0,
		product: models.Product{
			Name:        "Bình gốm trang trí hoa văn xanh ngọc",
			Slug:        "binh-gom-trang-tri-hoa-van-xanh-ngoc",
			Description: "Bình gốm trang trí với họa tiết hoa văn truyền thống màu xanh ngọc, được làm thủ công bởi nghệ nhân làng gốm Bát Tràng.",
			Price:       580000,
			SalePrice:   ptr(680000.0),
			Image:       "https://bizweb.dktcdn.net/100/275/164/products/binh-gom-dep-landecor.jpg?v=1576905412587",
			Images: []string{
				"https://bizweb.dktcdn.net/100/275/164/products/binh-gom-dep-landecor.jpg?v=1576905412587",
				"https://images.unsplash.com/photo-1610701596007-11502861dcfa",
			},
			Rating:      4.5,
			ReviewCount: 42,
			InStock:     true,
			IsNew:       true,
			IsFeatured:  true,
			Village:     "Làng gốm Bát Tràng",
		},
	},
	{
		categorySlug: "may-tre-dan",
		artisan:      2,
		product: models.Product{
			Name:        "Giỏ mây đan thủ công đựng hoa quả",
			Slug:        "gio-may-dan-thu-cong-dung-hoa-qua",
			Description: "Giỏ mây đan thủ công từ những sợi mây tự nhiên, phù hợp để đựng hoa quả hoặc làm vật trang trí trong nhà.",
			Price:       245000,
			Image:       "https://images.unsplash.com/photo-1573883430697-4c3479aae6b9",
			Images: []string{
				"https://images.unsplash.com/photo-1573883430697-4c3479aae6b9",
				"https://tradaophuongdong.com/wp-content/uploads/2022/05/283878617_7414250081980293_9214539554017787410_n.jpg",
			},
			Rating:      5,
			ReviewCount: 18,
			InStock:     true,
			IsFeatured:  true,
			Village:     "Làng nghề mây tre Phú Vinh",
		},
	},
	{
		categorySlug: "lua-to-tam",
		artisan:      1,
		product: models.Product{
			Name:        "Khăn lụa thêu tay hoa sen",
			Slug:        "khan-lua-theu-tay-hoa-sen",
			Description: "Khăn lụa tơ tằm nguyên chất với họa tiết hoa sen được thêu tay tỉ mỉ, thể hiện nét đẹp văn hóa Việt Nam.",
			Price:       350000,
			SalePrice:   ptr(420000.0),
			Image:       "https://images.unsplash.com/photo-1577083552431-6e5fd01aa342",
			Images: []string{
				"https://images.unsplash.com/photo-1577083552431-6e5fd01aa342",
				"https://bizweb.dktcdn.net/100/320/888/files/vai-lua-to-tam-6.jpg?v=1677826219176",
			},
			Rating:       4,
			ReviewCount:  36,
			InStock:      true,
			IsFeatured:   true,
			IsBestseller: true,
			Village:      "Làng lụa Vạn Phúc",
		},
	},
	{
		categorySlug: "do-go-my-nghe",
		artisan:      -1,
		product: models.Product{
			Name:        "Tượng gỗ trang trí hình cá chép",
			Slug:        "tuong-go-trang-tri-hinh-ca-chep",
			Description: "Tượng gỗ hình cá chép được chạm khắc tinh xảo từ gỗ mít, biểu tượng cho sự may mắn và thịnh vượng.",
			Price:       1250000,
			Image:       "https://images.unsplash.com/photo-1603006939079-5de87a28f6d6",
			Images: []string{
				"https://images.unsplash.com/photo-1603006939079-5de87a28f6d6",
				"https://gomynghe.vn/sites/default/files/styles/style_750x558/public/field/image/do-go-my-nghe-trang-tri-phong-khach.jpg?itok=s7zaAHRE",
			},
			Rating:      3.5,
			ReviewCount: 23,
			InStock:     true,
			IsFeatured:  true,
			Village:     "Làng nghề gỗ Đồng Kỵ",
		},
	},
}

var testimonials = []models.Testimonial{
	{
		Name:     "Nguyễn Thị Hương",
		Location: "Hà Nội",
		Image:    "https://images.unsplash.com/photo-1580489944761-15a19d654956",
		Rating:   5,
		Comment:  "Tôi rất ấn tượng với chất lượng sản phẩm từ Làng Nghề Việt. Chiếc bình gốm mà tôi mua không chỉ đẹp mà còn mang đậm nét văn hóa truyền thống. Dịch vụ giao hàng nhanh chóng và chu đáo. Chắc chắn tôi sẽ tiếp tục ủng hộ!",
	},
	{
		Name:     "Trần Minh Đức",
		Location: "TP. Hồ Chí Minh",
		Image:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e",
		Rating:   4,
		Comment:  "Đây là lần đầu tiên tôi mua hàng thủ công qua mạng và tôi thực sự hài lòng. Bộ khăn trải bàn thêu tay mà tôi đặt rất tinh xảo và đúng như mô tả. Nhân viên tư vấn rất tận tình và có kiến thức sâu về sản phẩm.",
	},
	{
		Name:     "Phạm Thanh Hà",
		Location: "Đà Nẵng",
		Image:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2",
		Rating:   5,
		Comment:  "Sản phẩm mây tre đan rất chắc chắn và đẹp mắt. Tôi đã mua nhiều lần và luôn hài lòng với chất lượng. Rất vui vì có thể hỗ trợ các làng nghề truyền thống của Việt Nam.",
	},
}
