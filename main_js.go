package main

import (
	"fmt"
	"syscall/js"
	"time"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	webgl "github.com/seqsense/webgl-go"
)

const (
	configPath       = "viewer.yaml"
	defaultPointSize = 4.0
	frameInterval    = time.Second / 60
)

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "modelCanvas")

	logDiv := doc.Call("getElementById", "log")
	logPrint := func(msg interface{}) {
		println(fmt.Sprint(msg))
		if logDiv.Truthy() {
			html := logDiv.Get("innerHTML").String()
			logDiv.Set("innerHTML", fmt.Sprintf("%s%v<br/>", html, msg))
		}
	}

	gl, err := webgl.New(canvas)
	if err != nil {
		logPrint(err)
		return
	}
	showDebugInfo(gl)

	search := js.Global().Get("location").Get("search").String()

	cfg := defaultConfig()
	cfgPath := selectConfigPath(search, configPath)
	if b, err := fetchGet(cfgPath); err == nil {
		c, err := parseConfig(b)
		if err != nil {
			logPrint(fmt.Sprintf("error: broken %s: %v", cfgPath, err))
		} else {
			cfg = c
		}
	}

	vi, err := newViewer(cfg)
	if err != nil {
		logPrint(err)
		return
	}
	vi.logPrint = logPrint

	vs, err := initVertexShader(gl, vsSource)
	if err != nil {
		logPrint(err)
		return
	}
	fs, err := initFragmentShader(gl, fsSource)
	if err != nil {
		logPrint(err)
		return
	}
	program, err := linkShaders(gl, vs, fs)
	if err != nil {
		logPrint(err)
		return
	}
	vsOverlay, err := initVertexShader(gl, vsOverlaySource)
	if err != nil {
		logPrint(err)
		return
	}
	fsOverlay, err := initFragmentShader(gl, fsOverlaySource)
	if err != nil {
		logPrint(err)
		return
	}
	programOverlay, err := linkShaders(gl, vsOverlay, fsOverlay)
	if err != nil {
		logPrint(err)
		return
	}

	projectionMatrixLocation := gl.GetUniformLocation(program, "uProjectionMatrix")
	modelViewMatrixLocation := gl.GetUniformLocation(program, "uModelViewMatrix")
	zMinLocation := gl.GetUniformLocation(program, "uZMin")
	zRangeLocation := gl.GetUniformLocation(program, "uZRange")
	pointSizeLocation := gl.GetUniformLocation(program, "uPointSize")
	alphaLocation := gl.GetUniformLocation(program, "uAlpha")

	projectionMatrixLocationOverlay := gl.GetUniformLocation(programOverlay, "uProjectionMatrix")
	modelViewMatrixLocationOverlay := gl.GetUniformLocation(programOverlay, "uModelViewMatrix")
	textureLocation := gl.GetUniformLocation(programOverlay, "uTexture")
	alphaLocationOverlay := gl.GetUniformLocation(programOverlay, "uAlpha")

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.ClearDepth(1.0)

	posBuf := gl.CreateBuffer()
	overlayBuf := gl.CreateBuffer()

	var pp *pc.PointCloud

	updateOverlayQuad := func() {
		b := vi.bounds
		quad := []float32{
			b.min[0], b.min[1], b.min[2], 0, 0,
			b.max[0], b.min[1], b.min[2], 1, 0,
			b.min[0], b.max[1], b.min[2], 0, 1,
			b.max[0], b.max[1], b.min[2], 1, 1,
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, overlayBuf)
		gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(quad), gl.STATIC_DRAW)
	}

	var mio modelIO = modelIOImpl{}
	loadModel := func(path string, now time.Time) {
		logPrint("loading model: " + path)
		p, err := mio.loadModel(path)
		if err != nil {
			logPrint(fmt.Sprintf("error: %v", err))
			return
		}
		b, err := cloudBounds(p)
		if err != nil {
			logPrint(fmt.Sprintf("error: %v", err))
			return
		}
		pp = p
		if pp.Points > 0 {
			gl.BindBuffer(gl.ARRAY_BUFFER, posBuf)
			gl.BufferData(gl.ARRAY_BUFFER, webgl.ByteArrayBuffer(pp.Data), gl.STATIC_DRAW)
		}
		vi.SetModel(b, now)
		updateOverlayQuad()
		logPrint("model loaded")
	}

	sel := selectAssets(search, cfg)

	var oio overlayIO = overlayIOImpl{}
	var overlayReady bool
	if sel.overlay != "" {
		img, err := oio.loadOverlay(sel.overlay)
		if err != nil {
			logPrint(fmt.Sprintf("error: %v", err))
		} else {
			tex := gl.CreateTexture()
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, tex)
			gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, gl.RGBA, gl.UNSIGNED_BYTE, img.Interface())
			gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
			gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
			gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
			overlayReady = true
		}
	}

	chAction := make(chan string)
	listenModelActions(chAction)
	bindActionTriggers(func(a string) {
		chAction <- a
	})

	chModelPath := make(chan string)
	js.Global().Set("pcdembedLoadModel",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			chModelPath <- args[0].String()
			return nil
		}),
	)

	g := newGesture(gl.Canvas)
	g.onDragStart = vi.DragStart
	g.onDragMove = vi.DragMove
	g.onDragEnd = vi.DragEnd
	g.onPinch = vi.zoom.Wheel

	chPointerDown := make(chan webgl.PointerEvent)
	gl.Canvas.OnPointerDown(func(e webgl.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chPointerDown <- e
	})
	chPointerMove := make(chan webgl.PointerEvent)
	gl.Canvas.OnPointerMove(func(e webgl.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chPointerMove <- e
	})
	chPointerUp := make(chan webgl.PointerEvent)
	gl.Canvas.OnPointerUp(func(e webgl.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chPointerUp <- e
	})
	gl.Canvas.OnPointerOut(func(e webgl.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chPointerUp <- e
	})
	chWheel := make(chan webgl.WheelEvent)
	gl.Canvas.OnWheel(func(e webgl.WheelEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chWheel <- e
	})
	gl.Canvas.OnContextMenu(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
	})

	loadModel(sel.model, time.Now())
	notifyReady()

	var width, height int
	var lastFrame cameraFrame
	updateProjectionMatrix := func(width, height int) {
		gl.Canvas.SetWidth(width)
		gl.Canvas.SetHeight(height)
		f := vi.frame
		pm := perspective(
			float32(vi.fov),
			float32(width)/float32(height),
			float32(f.near), float32(f.far),
		)
		gl.UseProgram(program)
		gl.UniformMatrix4fv(projectionMatrixLocation, false, pm)
		gl.UseProgram(programOverlay)
		gl.UniformMatrix4fv(projectionMatrixLocationOverlay, false, pm)
		gl.Viewport(0, 0, width, height)
	}

	tick := time.NewTicker(frameInterval)
	defer tick.Stop()

	for {
		select {
		case a := <-chAction:
			vi.Dispatch(a, time.Now())
		case path := <-chModelPath:
			loadModel(path, time.Now())
		case e := <-chPointerDown:
			g.pointerDown(e)
		case e := <-chPointerMove:
			g.pointerMove(e)
		case e := <-chPointerUp:
			g.pointerUp(e)
		case e := <-chWheel:
			vi.zoom.Wheel(e.DeltaY)
		case now := <-tick.C:
			newWidth := gl.Canvas.ClientWidth()
			newHeight := gl.Canvas.ClientHeight()
			if newWidth != width || newHeight != height || vi.frame != lastFrame {
				width, height = newWidth, newHeight
				lastFrame = vi.frame
				updateProjectionMatrix(width, height)
			}

			st := vi.Tick(now)
			c := vi.bounds.center()
			modelViewMatrix := mat.Translate(0, 0, -float32(vi.Distance())).
				MulAffine(mat.Rotate(1, 0, 0, float32(st.pitch))).
				MulAffine(mat.Rotate(0, 0, 1, float32(st.yaw))).
				MulAffine(mat.Translate(-c[0], -c[1], -c[2]))

			gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

			if pp != nil && pp.Points > 0 {
				gl.UseProgram(program)
				gl.BindBuffer(gl.ARRAY_BUFFER, posBuf)
				gl.VertexAttribPointer(0, 3, gl.FLOAT, false, pp.Stride(), 0)
				gl.EnableVertexAttribArray(0)

				gl.UniformMatrix4fv(modelViewMatrixLocation, false, modelViewMatrix)
				gl.Uniform1f(zMinLocation, vi.bounds.min[2])
				zRange := vi.bounds.max[2] - vi.bounds.min[2]
				if zRange <= 0 {
					zRange = 1
				}
				gl.Uniform1f(zRangeLocation, zRange)
				gl.Uniform1f(pointSizeLocation, defaultPointSize)
				gl.Uniform1f(alphaLocation, float32(st.opacity))
				gl.DrawArrays(gl.POINTS, 0, pp.Points)
			}

			if overlayReady && pp != nil {
				gl.UseProgram(programOverlay)
				gl.BindBuffer(gl.ARRAY_BUFFER, overlayBuf)
				gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, 0)
				gl.EnableVertexAttribArray(0)
				gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, 3*4)
				gl.EnableVertexAttribArray(1)

				gl.UniformMatrix4fv(modelViewMatrixLocationOverlay, false, modelViewMatrix)
				gl.Uniform1i(textureLocation, 0)
				gl.Uniform1f(alphaLocationOverlay, float32(st.opacity))
				gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
			}
		}
	}
}
