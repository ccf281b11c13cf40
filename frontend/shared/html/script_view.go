package html

// FormScript posts each input change to the form's data-fields-endpoint, one
// request at a time and in typing order, and holds any form submit until the
// queued edits have reached the server. Leaving the page any other way closes
// its page view.
func FormScript() string {
	return `<script>
(function () {
  var queue = Promise.resolve();
  var pending = 0;
  var leaving = false;

  function hidden(form, name) {
    var el = form.querySelector("input[type='hidden'][name='" + name + "']");
    return el ? el.value : "";
  }

  function enqueue(endpoint, body) {
    pending++;
    queue = queue.then(function () {
      return fetch(endpoint, {
        method: "POST",
        body: body,
        credentials: "same-origin",
        keepalive: true
      });
    }).catch(function () {}).then(function () {
      pending--;
    });
  }

  function bindFields(form) {
    var endpoint = form.getAttribute("data-fields-endpoint");
    form.addEventListener("input", function (e) {
      var el = e.target;
      if (!el.name || el.type === "hidden") return;
      var body = new URLSearchParams();
      body.set("_csrf", hidden(form, "_csrf"));
      body.set("v", hidden(form, "v"));
      body.set("name", el.name);
      body.set("value", el.value);
      enqueue(endpoint, body);
    });
  }

  function holdSubmit(form) {
    form.addEventListener("submit", function (e) {
      leaving = true;
      if (pending === 0) return;
      e.preventDefault();
      queue.then(function () { form.submit(); });
    });
  }

  function init() {
    var forms = document.querySelectorAll("form");
    for (var i = 0; i < forms.length; i++) {
      if (forms[i].hasAttribute("data-fields-endpoint")) bindFields(forms[i]);
      holdSubmit(forms[i]);
    }

    var view = document.body.getAttribute("data-view");
    var token = forms.length ? hidden(forms[0], "_csrf") : "";
    if (view && window.history && history.replaceState) {
      history.replaceState(null, "", "/");
    }
    window.addEventListener("pagehide", function (e) {
      if (e.persisted || leaving || !view || !token || !navigator.sendBeacon) return;
      var body = new URLSearchParams();
      body.set("_csrf", token);
      body.set("v", view);
      navigator.sendBeacon("/views/close", body);
    });
  }

  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", init);
  } else {
    init();
  }
})();
</script>`
}
