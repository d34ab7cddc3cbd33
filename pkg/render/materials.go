package render

import (
	"fmt"

	"github.com/leterax/go-grass/internal/config"
	"github.com/leterax/go-grass/internal/logger"
	"github.com/leterax/go-grass/internal/openglhelper"
	"github.com/leterax/go-grass/pkg/scene"
)

// loadScene compiles the three programs, uploads the geometry and loads the
// textures. Shader failures are returned; texture failures are logged and
// leave the texture empty.
func loadScene(assets config.Assets, strategy scene.GridStrategy) (*Scene, error) {
	log := logger.Logger()

	var built []func()
	fail := func(err error) (*Scene, error) {
		for i := len(built) - 1; i >= 0; i-- {
			built[i]()
		}
		return nil, err
	}

	// Grass
	grassShader, err := openglhelper.LoadShaderWithGeometry(assets.GrassVertex, assets.GrassGeometry, assets.GrassFragment)
	if err != nil {
		return fail(fmt.Errorf("failed to load grass shader: %w", err))
	}
	built = append(built, grassShader.Delete)

	anchors := scene.GrassAnchors(scene.DefaultGrid, strategy)
	grassMesh := openglhelper.NewMesh(scene.Flatten(anchors), scene.PositionLayout, openglhelper.Points)
	built = append(built, grassMesh.Delete)
	log.Info("grass field built", "anchors", len(anchors), "grid", strategy.String())

	grassTexture := loadTexture(assets.GrassTexture)
	built = append(built, grassTexture.Delete)

	// Land
	landShader, err := openglhelper.LoadShaderFromFiles(assets.LandVertex, assets.LandFragment)
	if err != nil {
		return fail(fmt.Errorf("failed to load land shader: %w", err))
	}
	built = append(built, landShader.Delete)

	landMesh := openglhelper.NewMesh(scene.LandQuad(scene.LandRepeat), scene.PositionUVLayout, openglhelper.TriangleStrip)
	built = append(built, landMesh.Delete)

	landTexture := loadTexture(assets.LandTexture)
	built = append(built, landTexture.Delete)

	// Sky box
	skyShader, err := openglhelper.LoadShaderFromFiles(assets.SkyboxVertex, assets.SkyboxFragment)
	if err != nil {
		return fail(fmt.Errorf("failed to load skybox shader: %w", err))
	}

	skyMesh := openglhelper.NewMesh(scene.SkyboxCube(scene.SkyboxHalfExtent), scene.PositionLayout, openglhelper.Triangles)

	skyTexture, err := openglhelper.LoadCubemap(openglhelper.CubemapFaces(assets.SkyboxFaces))
	if err != nil {
		log.Warn("cubemap texture failed to load", "err", err)
	}

	return &Scene{
		Grass: &Pass{Name: "grass", Program: grassShader, Mesh: grassMesh, Texture: grassTexture, Sampler: SamplerGrass},
		Land:  &Pass{Name: "land", Program: landShader, Mesh: landMesh, Texture: landTexture, Sampler: SamplerLand},
		Sky:   &Pass{Name: "skybox", Program: skyShader, Mesh: skyMesh, Texture: skyTexture, Sampler: SamplerSkybox},
	}, nil
}

func loadTexture(path string) *openglhelper.Texture {
	tex, err := openglhelper.LoadTexture2D(path)
	if err != nil {
		logger.Logger().Warn("texture failed to load", "path", path, "err", err)
	} else {
		logger.Logger().Debug("texture loaded", "path", path, "width", tex.Width, "height", tex.Height)
	}
	return tex
}
